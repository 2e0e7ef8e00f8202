package entity

// Store doubles as a warehouse; ContactPerson holds the managing user's id and
// is nil while the store has no assigned manager.
type Store struct {
	StoreID         string  `json:"store_id" gorm:"primaryKey;size:36"`
	Name            string  `json:"name" gorm:"size:200;not null"`
	TelephoneNumber string  `json:"telephone_number" gorm:"size:20"`
	Address         string  `json:"address" gorm:"size:500"`
	ContactPerson   *string `json:"contact_person" gorm:"size:36"`
	StationID       string  `json:"station_id" gorm:"size:36;not null;index"`
}

func (Store) TableName() string {
	return "stores"
}

// StoreWithCity is the list projection joining station city and manager name.
type StoreWithCity struct {
	StoreID         string  `json:"store_id"`
	Name            string  `json:"name"`
	TelephoneNumber string  `json:"telephone_number"`
	Address         string  `json:"address"`
	ContactPerson   *string `json:"contact_person"`
	StationID       string  `json:"station_id"`
	CityName        *string `json:"city_name"`
	ManagerName     *string `json:"manager_name"`
}
