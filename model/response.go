package model

// WebResponse is the envelope of every endpoint. Success responses carry
// data and no error; error responses carry error and no data. Paging is
// present on search responses only.
type WebResponse struct {
	Data   interface{} `json:"data,omitempty"`
	Error  string      `json:"error,omitempty"`
	Paging *Paging     `json:"paging,omitempty"`
}

// Paging describes a search result window. CurrentPage is zero-based and
// TotalPages is ceil(totalMatches / Size), 0 when nothing matched.
type Paging struct {
	CurrentPage int `json:"currentPage"`
	TotalPages  int `json:"totalPages"`
	Size        int `json:"size"`
}
