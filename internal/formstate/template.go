package formstate

// ProductTemplate trả về template chuẩn của form sản phẩm: mọi nhóm lồng nhau
// đều tồn tại với leaf rỗng/false. Đây là nguồn duy nhất định nghĩa cấu trúc
// form — màn hình thêm mới dùng trực tiếp, màn hình sửa merge record từ
// backend lên template này (Merge) trước khi trả cho client.
//
// Mỗi lần gọi trả về object mới để caller tự do mutate.
func ProductTemplate() State {
	return State{
		"name":        "",
		"brand":       "",
		"categoryId":  "",
		"slug":        "",
		"description": "",
		"isActive":    true,
		"sortOrder":   float64(0),
		"status":      "draft",

		"pricing": State{
			"originalPrice":   float64(0),
			"discountedPrice": float64(0),
			"discount": State{
				"type":  "percentage",
				"value": float64(0),
			},
			"emi": State{
				"available":    false,
				"startingFrom": float64(0),
				"tenure":       float64(0),
			},
		},

		"productDetails": State{
			"camera": State{
				"rear":  "",
				"front": "",
			},
			"network": "",
			"display": "",
			"general": State{
				"os":        "",
				"processor": "",
				"chipset":   "",
				"gpu":       "",
			},
			"memory": State{
				"ram":     "",
				"storage": "",
			},
			"battery": State{
				"capacity": "",
				"charging": State{
					"wired":    "",
					"wireless": "",
				},
			},
			"design": State{
				"dimensions": "",
				"weight":     "",
			},
			"sensors": "",
		},

		"availability": State{
			"inStock":           true,
			"quantity":          float64(0),
			"estimatedDelivery": "",
			"location":          "",
		},

		"paymentOptions": State{
			"cod":      false,
			"online":   true,
			"emi":      false,
			"exchange": false,
			"emiPlans": []interface{}{},
			"methods":  []interface{}{},
		},

		"trustMetrics": State{
			"warranty":     "",
			"returnPolicy": "",
			"authenticity": "",
		},

		"images":           []interface{}{},
		"conditionOptions": []interface{}{},
		"variants":         []interface{}{},
		"addOns":           []interface{}{},
		"offers":           []interface{}{},
		"topSpecs":         []interface{}{},
		"relatedProducts":  []interface{}{},
		"deductions":       []interface{}{},
	}
}

// ProductListPaths trả về danh sách dot-path các trường dạng danh sách của Product.
// Dùng khi reconcile record từ backend: CoerceLists + EnsureElemIDs theo từng path.
func ProductListPaths() []string {
	paths := make([]string, len(productListPaths))
	copy(paths, productListPaths)
	return paths
}

// Giá trị mặc định khi thêm phần tử mới vào các danh sách của form.
// Dùng bởi editor phía catalog khi client yêu cầu thêm phần tử rỗng.

// NewVariantElem phần tử variant mặc định (stock mặc định true)
func NewVariantElem() State {
	return State{
		"variantId": "",
		"storage":   "",
		"color":     "",
		"price":     float64(0),
		"stock":     true,
	}
}

// NewOfferElem phần tử offer mặc định
func NewOfferElem() State {
	return State{
		"title":       "",
		"discount":    float64(0),
		"validUntil":  "",
		"description": "",
	}
}

// NewConditionOptionElem phần tử condition option mặc định
func NewConditionOptionElem() State {
	return State{
		"label":       "",
		"price":       float64(0),
		"description": "",
	}
}

// NewAddOnElem phần tử add-on mặc định
func NewAddOnElem() State {
	return State{
		"name":        "",
		"cost":        float64(0),
		"description": "",
	}
}
