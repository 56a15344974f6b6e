package model

type CartItem struct {
	UserUUID    string `db:"user_uuid" json:"-"`
	ProductUUID string `db:"product_uuid" json:"productId"`
	Quantity    int    `db:"quantity" json:"quantity"`
}

// CartProduct : позиция корзины, дополненная данными товара
type CartProduct struct {
	Product
	Quantity int `db:"quantity" json:"quantity"`
}
