package parcel

import "strings"

// Party is the contact and address block of a sender or receiver.
type Party struct {
	Name     string
	Email    string
	Phone    string
	Region   string
	District string
	Address  string
}

func (p Party) normalized() Party {
	return Party{
		Name:     strings.TrimSpace(p.Name),
		Email:    strings.ToLower(strings.TrimSpace(p.Email)),
		Phone:    strings.TrimSpace(p.Phone),
		Region:   strings.TrimSpace(p.Region),
		District: strings.TrimSpace(p.District),
		Address:  strings.TrimSpace(p.Address),
	}
}
