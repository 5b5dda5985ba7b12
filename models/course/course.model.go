package course

import "gorm.io/gorm"

// Course represents a learning course in the catalog
type Course struct {
	gorm.Model
	Title         string `json:"title"`
	Slug          string `json:"slug" gorm:"uniqueIndex;not null"`
	Description   string `json:"description" gorm:"type:text"`
	Instructor    string `json:"instructor"`
	Category      string `json:"category" gorm:"index"`
	Level         string `json:"level" gorm:"default:'BEGINNER'"` // BEGINNER, INTERMEDIATE, ADVANCED
	Duration      int64  `json:"duration" gorm:"default:0"`       // duration in hours
	Price         uint   `json:"price" gorm:"default:0"`          // in paise, 0 = free
	DiscountPrice *uint  `json:"discount_price"`                  // in paise, nil = no discount
	Students      uint   `json:"students" gorm:"default:0"`       // aggregate enrollment counter
	Rating        uint   `json:"rating" gorm:"default:0"`
	ThumbnailURL  string `json:"thumbnail_url"`
	IsPublished   bool   `json:"is_published" gorm:"default:false"`
	IsDeleted     bool   `gorm:"default:false"`
}

// EffectivePrice is the amount a student actually pays: the discounted
// price when one is set, the list price otherwise.
func (c *Course) EffectivePrice() uint {
	if c.DiscountPrice != nil && *c.DiscountPrice < c.Price {
		return *c.DiscountPrice
	}
	return c.Price
}

// IsFree reports whether enrollment requires no payment.
func (c *Course) IsFree() bool {
	return c.EffectivePrice() == 0
}
