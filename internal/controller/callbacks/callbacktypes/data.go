package callbacktypes

// ========================
// Callback Data Patterns
// ========================
// Списки (бренды, модели, ремонты, слоты) передаются индексом в список,
// запомненный в сессии при отрисовке: callback data ограничена 64 байтами.

// Common callbacks
const (
	Noop = "noop"
)

// Booking wizard callbacks
const (
	BookCategory    = "bk_cat:"    // bk_cat:smartphone
	BookBrand       = "bk_brand:"  // bk_brand:3
	BookModel       = "bk_model:"  // bk_model:3
	BookRepair      = "bk_repair:" // bk_repair:3
	BookBack        = "bk_back"
	BookReset       = "bk_reset"
	BookShow        = "bk_show"
	BookTab         = "bk_tab:" // bk_tab:ios
	BookFound       = "bk_found"
	BookKeep        = "bk_keep"
	BookSearch      = "bk_search"
	BookSearchClear = "bk_search_clear"
	BookField       = "bk_field:"  // bk_field:name
	BookDates       = "bk_dates:"  // bk_dates:0 (смещение в неделях)
	BookDate        = "bk_date:"   // bk_date:2025-03-10
	BookTimes       = "bk_times"   // выбор слота для выбранной даты
	BookTime        = "bk_time:"   // bk_time:2
	BookSubmit      = "bk_submit:" // bk_submit:inquiry
)

// Admin callbacks
const (
	AdminMenu     = "ad_menu"
	AdminEditMode = "ad_edit"

	AdminBrandAdd  = "ad_brand_add"
	AdminBrandDel  = "ad_brand_del:"  // ad_brand_del:3
	AdminModelAdd  = "ad_model_add:"  // ad_model_add:flat | ad_model_add:new_series | ad_model_add:series:2
	AdminModelDel  = "ad_model_del:"  // ad_model_del:3
	AdminRepairs   = "ad_repairs"     // глобальный список ремонтов
	AdminRepairAdd = "ad_repair_add:" // ad_repair_add:device | ad_repair_add:global
	AdminRepairDel = "ad_repair_del:" // ad_repair_del:device:3 | ad_repair_del:global:3

	AdminAvailability  = "ad_av"
	AdminSlotAdd       = "ad_slot_add"
	AdminSlotDel       = "ad_slot_del:" // ad_slot_del:2
	AdminDates         = "ad_dates:"    // ad_dates:0
	AdminDate          = "ad_date:"     // ad_date:2025-03-10
	AdminDateInput     = "ad_date_input"
	AdminToggleDate    = "ad_toggle:"   // ad_toggle:2025-03-10
	AdminOverrideAdd   = "ad_ov_add:"   // ad_ov_add:2025-03-10
	AdminOverrideDel   = "ad_ov_del:"   // ad_ov_del:2025-03-10:2
	AdminOverrideReset = "ad_ov_reset:" // ad_ov_reset:2025-03-10
	AdminWeekImage     = "ad_week:"     // ad_week:0

	AdminContent      = "ad_content"
	AdminContentEdit  = "ad_content_edit:" // ad_content_edit:2
	AdminSectionOrder = "ad_order"
	AdminSectionUp    = "ad_order_up:" // ad_order_up:2
)

// Model add modes
const (
	ModelAddFlat      = "flat"
	ModelAddNewSeries = "new_series"
	ModelAddSeries    = "series:"
)

// Repair scopes
const (
	RepairScopeDevice = "device"
	RepairScopeGlobal = "global"
)

// Ключи запомненных списков вариантов в данных сессии
const (
	OptionBrands       = "opt:brands"
	OptionModels       = "opt:models"
	OptionModelSeries  = "opt:model_series"
	OptionSeries       = "opt:series"
	OptionRepairs      = "opt:repairs"
	OptionRepairIDs    = "opt:repair_ids"
	OptionSlots        = "opt:slots"
	OptionGlobalRepair = "opt:global_repairs"
	OptionDefaultSlots = "opt:default_slots"
	OptionOverride     = "opt:override:" // opt:override:2025-03-10
	OptionContent      = "opt:content"
	OptionSections     = "opt:sections"
)
