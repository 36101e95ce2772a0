package callbacktypes

// Состояния диалога, которые выставляют callback handlers
const (
	StateNone UserState = ""

	StateSearch     UserState = "search"
	StateFieldInput UserState = "field_input"

	StateAdminBrand  UserState = "admin_brand"
	StateAdminModel  UserState = "admin_model"
	StateAdminRepair UserState = "admin_repair"

	StateAdminSlot         UserState = "admin_slot"
	StateAdminOverrideSlot UserState = "admin_override_slot"
	StateAdminDate         UserState = "admin_date"

	StateAdminContent UserState = "admin_content"
)

// Ключи данных диалога
const (
	DataField       = "field"
	DataModelMode   = "model_mode"
	DataModelSeries = "model_series"
	DataRepairScope = "repair_scope"
	DataDate        = "date"
	DataContentID   = "content_id"
)
