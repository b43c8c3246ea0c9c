package state

import "fmt"

// Level is the severity of a notice.
type Level int

const (
	LevelInfo Level = iota
	LevelWarn
)

// NoticeKind identifies what produced a notice.
type NoticeKind string

const (
	NoticeCompareFull         NoticeKind = "compare_full"
	NoticeNothingMonitored    NoticeKind = "nothing_monitored"
	NoticePersistFailed       NoticeKind = "persist_failed"
	NoticeLookupFailed        NoticeKind = "lookup_failed"
	NoticeLookupFieldsDropped NoticeKind = "lookup_fields_dropped"
)

// Notice is a user-facing message for a rejected or degraded action.
// It is not an error: the state is always consistent when one is returned.
type Notice struct {
	Kind  NoticeKind
	Level Level
	Text  string
}

func (n *Notice) String() string {
	if n == nil {
		return ""
	}
	return n.Text
}

// CompareFull is returned when a fourth school is added to the comparison.
func CompareFull() *Notice {
	return &Notice{
		Kind:  NoticeCompareFull,
		Level: LevelInfo,
		Text:  fmt.Sprintf("最多只能对比 %d 所学校 (compare up to %d schools)", MaxCompared, MaxCompared),
	}
}

// NothingMonitored is returned when a monitor run is requested with no
// schools flagged.
func NothingMonitored() *Notice {
	return &Notice{
		Kind:  NoticeNothingMonitored,
		Level: LevelInfo,
		Text:  "请先在学校卡片上开启 AI 监测 (flag schools with `monitor` first)",
	}
}

// PersistFailed is returned when a slice could not be written. The change
// stays in memory for the rest of the session.
func PersistFailed(key string, err error) *Notice {
	return &Notice{
		Kind:  NoticePersistFailed,
		Level: LevelWarn,
		Text:  fmt.Sprintf("could not save %s, change kept for this session only: %v", key, err),
	}
}

// LookupFailed is returned when the intake prefill found nothing.
func LookupFailed() *Notice {
	return &Notice{
		Kind:  NoticeLookupFailed,
		Level: LevelWarn,
		Text:  "未能在官网找到详细信息，请手动填写。",
	}
}

// LookupFieldsDropped lists prefill values that did not validate.
func LookupFieldsDropped(fields []string) *Notice {
	return &Notice{
		Kind:  NoticeLookupFieldsDropped,
		Level: LevelInfo,
		Text:  fmt.Sprintf("ignored unrecognised values from lookup: %v", fields),
	}
}
