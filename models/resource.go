package models

import "fmt"

// Resource represents one community service listing in the directory.
type Resource struct {
	ResourceID string  `json:"resource_id"`
	Name       string  `json:"name"`
	Category   string  `json:"category"`
	Address    string  `json:"address"`
	Lat        float64 `json:"lat"`
	Lng        float64 `json:"lng"`

	Phone       string `json:"phone,omitempty"`
	Website     string `json:"website,omitempty"`
	Description string `json:"description,omitempty"`

	// Hours is operator-entered free text ("Mon-Fri 9am-5pm", "24/7",
	// "Temporarily closed", ...). It carries no structural guarantees; the
	// hours package interprets it best-effort at read time and it is never
	// validated at write time.
	Hours string `json:"hours,omitempty"`
}

func (r *Resource) ToString() string {
	return fmt.Sprintf("Resource(id=%s, name=%s, category=%s, address=%s)",
		r.ResourceID, r.Name, r.Category, r.Address)
}
