package entity

type City struct {
	CityID   string `json:"city_id" gorm:"primaryKey;size:36"`
	CityName string `json:"city_name" gorm:"size:100;not null"`
	Province string `json:"province" gorm:"size:100"`
}

func (City) TableName() string {
	return "cities"
}

type RailwayStation struct {
	StationID   string `json:"station_id" gorm:"primaryKey;size:36"`
	StationName string `json:"station_name" gorm:"size:200;not null"`
	CityID      string `json:"city_id" gorm:"size:36;not null;index"`
}

func (RailwayStation) TableName() string {
	return "railway_stations"
}

// Route is a road route served from a store towards a destination city.
type Route struct {
	RouteID     string `json:"route_id" gorm:"primaryKey;size:36"`
	StoreID     string `json:"store_id" gorm:"size:36;not null;index"`
	StartCityID string `json:"start_city_id" gorm:"size:36;not null"`
	EndCityID   string `json:"end_city_id" gorm:"size:36;not null"`
	Distance    int    `json:"distance"`
}

func (Route) TableName() string {
	return "routes"
}
