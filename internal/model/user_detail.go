package model

// Equipment is a kind of ski gear a member may own. The set of names is
// open; these are the kinds the club tracks today.
type Equipment string

// Known equipment kinds.
const (
	EquipmentSkis      Equipment = "SKIS"
	EquipmentPoles     Equipment = "POLES"
	EquipmentHelmet    Equipment = "HELMET"
	EquipmentBoots     Equipment = "BOOTS"
	EquipmentSnowboard Equipment = "SNOWBOARD"
)

// EquipmentItem is one row of the user_equipment side table. The column name
// user_id references the owning user_details row.
type EquipmentItem struct {
	UserDetailID uint      `json:"-" gorm:"primaryKey;autoIncrement:false;column:user_id"`
	Equipment    Equipment `json:"equipment" gorm:"primaryKey;size:32"`
}

// TableName maps the equipment rows to the user_equipment table.
func (EquipmentItem) TableName() string { return "user_equipment" }

// UserDetail carries the season state of a member: whether the fee is paid
// and which equipment the member owns. A detail never outlives its owner.
type UserDetail struct {
	ID      uint `json:"id" gorm:"primaryKey"`
	UserID  uint `json:"user_id" gorm:"uniqueIndex;not null"`
	HasPaid bool `json:"has_paid" gorm:"not null;default:false"`

	Equipment []EquipmentItem `json:"equipment" gorm:"foreignKey:UserDetailID;constraint:OnDelete:CASCADE"`
}

// TableName maps details to the user_details table.
func (UserDetail) TableName() string { return "user_details" }

// EquipmentSet returns the owned equipment as a plain slice.
func (d *UserDetail) EquipmentSet() []Equipment {
	items := make([]Equipment, 0, len(d.Equipment))
	for _, e := range d.Equipment {
		items = append(items, e.Equipment)
	}
	return items
}

// SetEquipmentSet replaces the owned equipment. Duplicates are collapsed.
func (d *UserDetail) SetEquipmentSet(items ...Equipment) {
	seen := make(map[Equipment]struct{}, len(items))
	d.Equipment = d.Equipment[:0]
	for _, e := range items {
		if _, ok := seen[e]; ok {
			continue
		}
		seen[e] = struct{}{}
		d.Equipment = append(d.Equipment, EquipmentItem{UserDetailID: d.ID, Equipment: e})
	}
}

// OwnsEquipment reports whether the member owns the given equipment kind.
func (d *UserDetail) OwnsEquipment(item Equipment) bool {
	for _, e := range d.Equipment {
		if e.Equipment == item {
			return true
		}
	}
	return false
}
