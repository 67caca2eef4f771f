package export_rack_kpis

// Request модель запроса выгрузки показателей
type Request struct {
	HotelID string
	From    string // YYYY-MM-DD
	To      string // YYYY-MM-DD
}

// Response xlsx файл с показателями
type Response struct {
	FileName string
	Content  []byte
}

const (
	sheetName   = "Rack KPIs"
	contentType = "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet"
)

// ContentType MIME тип выгрузки
func ContentType() string {
	return contentType
}

var headers = []string{
	"Date",
	"Occupancy, %",
	"Occupied Rooms",
	"Total Rooms",
	"Average Price",
	"Trend",
}

var columnWidths = []float64{14, 14, 16, 13, 15, 10}
