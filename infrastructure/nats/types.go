package nats

// Streams and subjects
const (
	// AdEventsStream เก็บ event ของ ads (consumer ภายนอกอ่านต่อ เช่น search indexer)
	AdEventsStream   = "AD_EVENTS"
	SubjectAdCreated = "ads.created"

	// Pub/Sub ธรรมดา (ไม่ต้อง persist) สำหรับล้าง cache ทุก instance
	SubjectFieldsInvalidated = "fields.invalidated"
)

// ═══════════════════════════════════════════════════════════════════════════════
// JetStream Status (สำหรับ /health)
// ═══════════════════════════════════════════════════════════════════════════════

type StreamStatus struct {
	Name     string `json:"name"`
	Messages uint64 `json:"messages"`
	Bytes    uint64 `json:"bytes"`
	LastSeq  uint64 `json:"lastSeq"`
}
