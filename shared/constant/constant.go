package constant

// StorageKeyReservationForm is the durable-storage key holding the
// in-progress reservation draft.
const StorageKeyReservationForm = "reservationFormData"

const (
	DateTimeLocalFormat = "2006-01-02T15:04"
	DateOnlyFormat      = "2006-01-02"
)

const (
	OtelServiceScopeName  = "service"
	OtelStoreScopeName    = "store"
	OtelExternalScopeName = "external"
)

const (
	RequestHeaderContentType = "Content-Type"
	ContentTypeJSON          = "application/json"
)

const (
	Empty = ""
)
