package requestresponse

// ValidateCouponRequest : тело запроса на проверку купона
type ValidateCouponRequest struct {
	Code string `json:"code" example:"GIFT10"`
}

// ValidateCouponResponse : ответ на успешную проверку купона
type ValidateCouponResponse struct {
	Message            string `json:"message" example:"купон действителен"`
	Code               string `json:"code" example:"GIFT10"`
	DiscountPercentage int    `json:"discountPercentage" example:"10"`
}
