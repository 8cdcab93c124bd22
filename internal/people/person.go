package people

type Photo struct {
	ID      string `json:"id,omitempty"`
	URL     string `json:"url"`
	Caption string `json:"caption,omitempty"`
}

type Person struct {
	Key      string  `json:"key"`
	Name     string  `json:"name"`
	Age      int     `json:"age"`
	IsSenior bool    `json:"is65OrOlder,omitempty"`
	Photos   []Photo `json:"photos,omitempty"`
}

func (p Person) clone() Person {
	if p.Photos != nil {
		p.Photos = append([]Photo(nil), p.Photos...)
	}
	return p
}
