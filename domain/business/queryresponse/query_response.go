package queryresponse

import (
	"bikeshare/domain/entities"
	"bikeshare/domain/entities/report"
)

const responseType = "report"

// QueryResponse contains the report of an exploration round as it leaves the explorer
type QueryResponse struct {
	Metadata entities.Metadata `json:"metadata"`
	QueryID  string            `json:"query_id"`
	Report   *report.Report    `json:"report"`
}

func NewQueryResponse(queryID string, result *report.Report, sender string) *QueryResponse {
	metadata := entities.NewMetadata(string(result.Filter.City), responseType, sender, result.Filter.String())
	return &QueryResponse{
		Metadata: metadata,
		QueryID:  queryID,
		Report:   result,
	}
}

func (qr *QueryResponse) GetQueryID() string {
	return qr.QueryID
}
