package models

// NoticeCategory is the severity of a one-shot [Notice].
type NoticeCategory string

const (
	NoticeSuccess NoticeCategory = "success"
	NoticeInfo    NoticeCategory = "info"
	NoticeWarning NoticeCategory = "warning"
	NoticeDanger  NoticeCategory = "danger"
)

// Notice is a message shown once on the page that follows a redirect.
type Notice struct {
	Category NoticeCategory `json:"category"`
	Message  string         `json:"message"`
}
