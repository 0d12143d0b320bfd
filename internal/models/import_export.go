package models

// ImportValidationError describes one rejected row of an uploaded file.
// Row numbers are 1-based and count the header row.
type ImportValidationError struct {
	Row     int    `json:"row"`
	Column  string `json:"column"`
	Message string `json:"message"`
	Value   string `json:"value"`
	Code    string `json:"code"`
}
