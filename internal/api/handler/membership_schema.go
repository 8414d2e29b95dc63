package handler

type createMembershipRequest struct {
	Client              string `json:"client"               validate:"required"`
	SubscriptionPackage string `json:"subscription_package"`
}

// updateMembershipRequest is a partial update. Sending an empty
// subscription_package clears it.
type updateMembershipRequest struct {
	Client              *string `json:"client" validate:"omitempty,min=1"`
	SubscriptionPackage *string `json:"subscription_package"`
}

type createPackageRequest struct {
	PackageName string  `json:"package_name" validate:"required"`
	Duration    int64   `json:"duration"     validate:"gte=0"`
	Price       float64 `json:"price"        validate:"gte=0"`
	Currency    string  `json:"currency"     validate:"omitempty,len=3"`
}
