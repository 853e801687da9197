package model

type FunkoPop struct {
	BaseModel
	Title       string  `gorm:"type:varchar(50);not null" json:"title"`
	Price       float64 `gorm:"not null" json:"price"`
	Description string  `gorm:"type:varchar(250);not null" json:"description"`
	Quantity    int     `gorm:"not null" json:"quantity"`
	InStock     bool    `gorm:"default:true" json:"instock"`

	// Back-references for enumeration only. Deleting a funko pop leaves its
	// reviews behind, and deleting a review never touches the funko pop.
	Reviews []Review `gorm:"foreignKey:ProductID" json:"reviews"`
}
