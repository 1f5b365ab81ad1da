package transaction

import (
	"strings"
)

// CategoryOthers is returned when no keyword rule matches.
const CategoryOthers = "Others"

// categoryOverrides short-circuits categorization for the category
// codes assigned by hand in the source spreadsheet. An exact match
// here wins over any keyword rule.
var categoryOverrides = map[string]string{
	"saving":     "saving",
	"team":       "team",
	"invest":     "Investment",
	"foodOffice": "Food in office",
	"food":       "Food",
	"rent":       "rent",
	"cash":       "cash",
	"health":     "health",
	"Education":  "Education",
	"shopping":   "shopping",
	"income":     "income",
}

// categoryRule maps a description keyword to a category label.
type categoryRule struct {
	keyword string
	label   string
}

// categoryRules is scanned in order and the first keyword found as a
// substring of the lower-cased description wins. Keywords are not
// disjoint ("café" vs "cafe máy"), so the order is part of the
// contract: reordering entries changes report output. Keywords are
// stored lower-cased; matching is diacritic-sensitive.
var categoryRules = []categoryRule{
	{"xăng", "Fuel"},
	{"nước", "Utilities"},
	{"điện", "Utilities"},
	{"tran minh dat", "Rent"},
	{"nhà", "Rent"},
	{"quản lý", "Management Fees"},
	{"internet", "Internet"},
	{"wifi", "Internet"},
	{"thuốc", "Health"},
	{"sức khỏe", "Health"},
	{"đo mắt", "Health"},
	{"khám tai", "Health"},
	{"an choi", "Entertainment"},
	{"bao hiem", "Insurance"},
	{"benh vien da khoa", "Healthcare"},
	{"long châu", "Pharmacy"},
	{"rut tien bang qrc", "Cash Withdrawal"},
	{"vo thuong truong nhon", "Personal"},
	{"vps", "Investment"},
	{"vps-vo thuong truong nhon", "Investment"},
	{"xe hoàng đạt", "Transportation"},
	{"xe phương trang", "Transportation"},
	{"bbgym2", "Gym"},
	{"bhc cinema", "Entertainment"},
	{"fpt telecom", "Internet"},
	{"hutech", "Education"},
	{"ngày 8/3", "Gifts"},
	{"nha khoa", "Healthcare"},
	{"vinaphone", "Telecommunications"},
	{"hiệp gà barber", "Barber"},
	{"đông tây barber", "Barber"},
	{"cinestar", "Entertainment"},
	{"tk tgtt cn cong hoa", "Bank Transfer"},
	{"truong dai hoc cong nghe tphcm", "Education"},
	{"cty cp dich vu di dong truc tuyen", "Online Services"},
	{"coopmart", "Supermarket"},
	{"emart", "Supermarket"},
	{"siêu thị", "Supermarket"},
	{"winmart", "Supermarket"},
	{"nguyen le tan binh", "Personal Transfer"},
	{"pham minh thu", "Personal Transfer"},
	{"nhớt", "Vehicle Maintenance"},
	{"sửa xe", "Vehicle Maintenance"},
	{"honda head", "Vehicle Maintenance"},
	{"rửa xe", "Vehicle Maintenance"},
	{"nguyen thi my nhan", "Team"},
	{"ha thi my tram", "Team"},
	{"circlek", "Convenience Store"},
	{"familymart", "Convenience Store"},
	{"gs25", "Convenience Store"},
	{"7eleven", "Convenience Store"},
	{"sendo", "Food"},
	{"bhx", "Food"},
	{"phong ký 2", "Food"},
	{"mì tôm", "Food"},
	{"cuốn thịt nướng", "Food"},
	{"canh chua", "Food"},
	{"canh cá lóc", "Food"},
	{"xiên bẩn", "Food"},
	{"xôi", "Food"},
	{"utop", "Food"},
	{"quán gỏi cá lăn", "Restaurant"},
	{"hương biển", "Restaurant"},
	{"chè", "Beverage"},
	{"mixue", "Beverage"},
	{"suncha", "Beverage"},
	{"tàu hủ", "Beverage"},
	{"cafe máy", "Beverage"},
	{"café", "Beverage"},
	{"nước dừa", "Beverage"},
	{"rau má", "Beverage"},
	{"sinh tố", "Beverage"},
	{"sữa hạt", "Beverage"},
	{"trà", "Beverage"},
	{"cây đồ uống", "Beverages"},
	{"coca", "Beverages"},
	{"tiktok", "Shopping"},
	{"click buy", "Shopping"},
	{"mazo", "Shopping"},
	{"shopee", "Shopping"},
	{"simime shop", "Shopping"},
	{"chạm lá", "Shopping"},
	{"cellphones", "Shopping"},
	{"tpbank", "Banking"},
	{"visa", "Banking"},
	{"phở gia truyền", "Food"},
	{"ho nguyen duy", "Rent"},
	{"cn cty cp vien thong fpt", "Internet"},
	{"quy nhon trip", "Quy Nhon Trip"},
}

// Categorize maps a transaction's free-text description and optional
// category code to a canonical category label. It is total: every
// input yields a non-empty label, falling back to CategoryOthers.
func Categorize(description, category string) string {
	if label, ok := categoryOverrides[category]; ok {
		return label
	}

	description = strings.ToLower(description)

	for _, rule := range categoryRules {
		if strings.Contains(description, rule.keyword) {
			return rule.label
		}
	}

	return CategoryOthers
}
