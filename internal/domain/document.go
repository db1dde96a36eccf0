package domain

// Document 是持久化的整体，读写都以它为单位
type Document struct {
	Users     []User     `json:"users"`
	Vacations []Vacation `json:"vacations"`
}

func NewDocument() *Document {
	return &Document{
		Users:     make([]User, 0),
		Vacations: make([]Vacation, 0),
	}
}

// Normalize 保证两个集合序列化为 [] 而不是 null
func (d *Document) Normalize() {
	if d.Users == nil {
		d.Users = make([]User, 0)
	}
	if d.Vacations == nil {
		d.Vacations = make([]Vacation, 0)
	}
}
