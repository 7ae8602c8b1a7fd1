package model

// Category is one of the five club teams an applicant can be sorted into.
type Category string

const (
	CategoryProject      Category = "Proje-Yarışma"
	CategoryMedia        Category = "Medya"
	CategoryNetwork      Category = "Network"
	CategoryOrganization Category = "Organizasyon"
	CategoryEducation    Category = "Eğitim"
)

// Categories is the fixed enumeration order. Score maps always carry
// every entry, and verdict tie-breaks resolve to the earliest category.
var Categories = []Category{
	CategoryProject,
	CategoryMedia,
	CategoryNetwork,
	CategoryOrganization,
	CategoryEducation,
}
