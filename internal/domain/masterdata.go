package domain

// Справочные данные: управляются администраторами, читаются всеми

// Sport вид спорта
type Sport struct {
	ID   int64
	Name string
}

// Province провинция
type Province struct {
	ID   int64
	Name string
}

// Locality населённый пункт внутри провинции
type Locality struct {
	ID         int64
	ProvinceID int64
	Name       string
}
