package domain

// Acessores de identidade usados pelas telas de cadastro

func (r *RealEstate) GetID() int64 {
	return r.ID
}

func (r *RealEstate) SetID(id int64) {
	r.ID = id
}

func (r *Unit) GetID() int64 {
	return r.ID
}

func (r *Unit) SetID(id int64) {
	r.ID = id
}

func (r *Client) GetID() int64 {
	return r.ID
}

func (r *Client) SetID(id int64) {
	r.ID = id
}

func (r *Contract) GetID() int64 {
	return r.ID
}

func (r *Contract) SetID(id int64) {
	r.ID = id
}

func (r *Maintenance) GetID() int64 {
	return r.ID
}

func (r *Maintenance) SetID(id int64) {
	r.ID = id
}

func (r *Assessment) GetID() int64 {
	return r.ID
}

func (r *Assessment) SetID(id int64) {
	r.ID = id
}

func (r *Service) GetID() int64 {
	return r.ID
}

func (r *Service) SetID(id int64) {
	r.ID = id
}

func (r *Section) GetID() int64 {
	return r.ID
}

func (r *Section) SetID(id int64) {
	r.ID = id
}

func (r *Media) GetID() int64 {
	return r.ID
}

func (r *Media) SetID(id int64) {
	r.ID = id
}

func (r *MarketingRequest) GetID() int64 {
	return r.ID
}

func (r *MarketingRequest) SetID(id int64) {
	r.ID = id
}

func (r *User) GetID() int64 {
	return r.ID
}

func (r *User) SetID(id int64) {
	r.ID = id
}
