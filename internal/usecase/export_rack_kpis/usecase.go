package export_rack_kpis

import (
	"context"
	"fmt"

	"github.com/m04kA/SMC-RackService/internal/usecase/get_rack_kpis"
)

// UseCase use case для выгрузки показателей шахматки в xlsx
type UseCase struct {
	kpis   KPICalculator
	logger Logger
}

// NewUseCase создает новый экземпляр use case
func NewUseCase(kpis KPICalculator, logger Logger) *UseCase {
	return &UseCase{
		kpis:   kpis,
		logger: logger,
	}
}

// Execute считает показатели и упаковывает их в книгу Excel
// Ошибки расчета (валидация периода, отель не найден) возвращаются как есть
func (uc *UseCase) Execute(ctx context.Context, req *Request) (*Response, error) {
	kpis, err := uc.kpis.Execute(ctx, &get_rack_kpis.Request{
		HotelID: req.HotelID,
		From:    req.From,
		To:      req.To,
	})
	if err != nil {
		return nil, err
	}

	content, err := buildWorkbook(kpis.Days)
	if err != nil {
		uc.logger.Error("ExportRackKPIs: %v", err)
		return nil, err
	}

	uc.logger.Info("ExportRackKPIs: hotel=%s, %d day(s), %d bytes", req.HotelID, len(kpis.Days), len(content))

	return &Response{
		FileName: fmt.Sprintf("rack-kpis-%s-%s-%s.xlsx", kpis.HotelID, kpis.From, kpis.To),
		Content:  content,
	}, nil
}
