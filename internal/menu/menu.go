package menu

// Item represents one dish on the restaurant menu. Items are loaded once at
// catalog load time and never mutated afterwards.
// JSON tags follow the camelCase convention used elsewhere in the project.
type Item struct {
	ID          int     `json:"id"`
	Name        string  `json:"name"`
	Price       float64 `json:"price"`
	Image       string  `json:"image"`
	Category    string  `json:"category"`
	Description string  `json:"description"`
}

// DefaultMenu returns the built-in menu served when no database rows exist.
// The ids are stable; the shop front-end references them directly.
func DefaultMenu() []Item {
	return []Item{
		{ID: 1, Name: "ข้าวผัดกุ้ง", Price: 80, Image: "/images/menu/fried_rice.png", Category: "จานหลัก", Description: "ข้าวผัดกุ้งสด ไข่ดาว"},
		{ID: 2, Name: "ผัดไทยกุ้งสด", Price: 90, Image: "/images/menu/pad_thai.png", Category: "จานหลัก", Description: "ผัดไทยเส้นจันท์ กุ้งแม่น้ำ"},
		{ID: 3, Name: "ต้มยำกุ้ง", Price: 150, Image: "/images/menu/tom_yum.png", Category: "จานหลัก", Description: "ต้มยำน้ำข้น กุ้งแม่น้ำตัวใหญ่"},
		{ID: 4, Name: "ส้มตำไทย", Price: 50, Image: "/images/menu/som_tum.png", Category: "จานเรียกน้ำย่อย", Description: "ส้มตำรสจัดจ้าน"},
		{ID: 5, Name: "ไก่ทอดหาดใหญ่", Price: 120, Image: "/images/menu/fried_chicken.png", Category: "จานหลัก", Description: "ไก่ทอดกรอบ พร้อมน้ำจิ้ม"},
		{ID: 6, Name: "ข้าวมันไก่", Price: 60, Image: "/images/menu/chicken_rice.png", Category: "จานหลัก", Description: "ข้าวมันไก่ต้ม/ทอด น้ำจิ้มสูตรพิเศษ"},
		{ID: 7, Name: "ชาเย็น", Price: 35, Image: "/images/menu/thai_tea.png", Category: "เครื่องดื่ม", Description: "ชาไทยเย็นหวานมัน"},
		{ID: 8, Name: "น้ำมะนาว", Price: 30, Image: "/images/menu/lime_juice.png", Category: "เครื่องดื่ม", Description: "น้ำมะนาวสดคั้น"},
		{ID: 9, Name: "ข้าวเหนียวมะม่วง", Price: 80, Image: "/images/menu/mango_sticky_rice.png", Category: "ของหวาน", Description: "ข้าวเหนียวมูน มะม่วงสุก"},
		{ID: 10, Name: "ลอดช่องสิงคโปร์", Price: 45, Image: "/images/menu/lod_chong.png", Category: "ของหวาน", Description: "ลอดช่องใบเตย กะทิสด"},
	}
}
