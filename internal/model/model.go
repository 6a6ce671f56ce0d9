package model

type Paging struct {
	Page          int `json:"page"`
	PageSize      int `json:"pageSize"`
	TotalElements int `json:"totalElements"`
}

type ListVehicles struct {
	Paging `json:",inline"`
	Items  []Vehicle `json:"items"`
}

type ListCustomers struct {
	Paging `json:",inline"`
	Items  []Customer `json:"items"`
}

type ListBookings struct {
	Paging `json:",inline"`
	Items  []Booking `json:"items"`
}
