package export_rack_kpis

import "errors"

var (
	// ErrBuildWorkbook возвращается при ошибке формирования xlsx
	ErrBuildWorkbook = errors.New("export_rack_kpis: failed to build workbook")
)
