package models

// Setting is the model for the 'settings' table, a key-value store
// for admin-editable store configuration (bank transfer details,
// maintenance mode, store contact info).
type Setting struct {
	Key   string `json:"key" db:"setting_key"`
	Value string `json:"value" db:"setting_value"`
}

// Well-known setting keys.
const (
	SettingMaintenanceMode = "maintenance_mode"
	SettingStoreName       = "store_name"
	SettingStorePhone      = "store_phone"
	SettingBankName        = "payment_bank_name"
	SettingBankAccount     = "payment_account_number"
	SettingBankHolder      = "payment_account_name"
)
