package contact

// NoticeKind identifies a user-facing notice.
type NoticeKind string

const (
	NoticeFixFields     NoticeKind = "fix_fields"
	NoticeSending       NoticeKind = "sending"
	NoticeSent          NoticeKind = "sent"
	NoticeRejected      NoticeKind = "rejected"
	NoticeNetwork       NoticeKind = "network"
	NoticeTimeout       NoticeKind = "timeout"
	NoticeConfiguration NoticeKind = "configuration"
)

// Severity drives how the notice is styled.
type Severity string

const (
	SeverityInfo    Severity = "info"
	SeveritySuccess Severity = "success"
	SeverityError   Severity = "error"
)

// Notice is the message shown to the visitor about the last action.
type Notice struct {
	Kind     NoticeKind `json:"kind"`
	Severity Severity   `json:"severity"`
	Message  string     `json:"message"`
}

var notices = map[NoticeKind]Notice{
	NoticeFixFields:     {NoticeFixFields, SeverityError, "Please fix the errors before submitting"},
	NoticeSending:       {NoticeSending, SeverityInfo, "Sending your message..."},
	NoticeSent:          {NoticeSent, SeveritySuccess, "Message sent successfully! We'll get back to you soon."},
	NoticeRejected:      {NoticeRejected, SeverityError, "Failed to send message. Please try again."},
	NoticeNetwork:       {NoticeNetwork, SeverityError, "Network error. Please check your connection."},
	NoticeTimeout:       {NoticeTimeout, SeverityError, "The request timed out. Please try again."},
	NoticeConfiguration: {NoticeConfiguration, SeverityError, "Configuration error. Please try again later."},
}

func noticeFor(kind NoticeKind) *Notice {
	n := notices[kind]
	return &n
}
