package models

// Brand represents one partner brand of the catalog
type Brand struct {
	Name          string    `json:"nom" yaml:"nom"`
	Description   string    `json:"description" yaml:"description"`
	DescriptionFR string    `json:"description_fr,omitempty" yaml:"description_fr,omitempty"`
	DescriptionEN string    `json:"description_en,omitempty" yaml:"description_en,omitempty"`
	MainImage     string    `json:"mainImage" yaml:"mainImage"`
	Logo          string    `json:"logo" yaml:"logo"`
	Tags          []string  `json:"tags" yaml:"tags"`
	Type          string    `json:"type" yaml:"type"`
	Website       string    `json:"website,omitempty" yaml:"website,omitempty"`
	History       string    `json:"histoire,omitempty" yaml:"histoire,omitempty"`
	Images        []string  `json:"images,omitempty" yaml:"images,omitempty"`
	ImageFolder   string    `json:"imageFolder,omitempty" yaml:"imageFolder,omitempty"`
	Products      []Product `json:"produits,omitempty" yaml:"produits,omitempty"`
	Contact       *Contact  `json:"contact,omitempty" yaml:"contact,omitempty"`
}

// HasTag reports whether tag is one of the brand's tags
func (b Brand) HasTag(tag string) bool {
	for _, t := range b.Tags {
		if t == tag {
			return true
		}
	}
	return false
}

// Product is a flagship product of a brand
type Product struct {
	ID          string `json:"id,omitempty" yaml:"id,omitempty"`
	Name        string `json:"nom" yaml:"nom"`
	Description string `json:"description" yaml:"description"`
	Image       string `json:"image" yaml:"image"`
	Price       string `json:"prix,omitempty" yaml:"prix,omitempty"`
}

// Contact holds a brand's contact block, with French and English variants
type Contact struct {
	Adresse   string `json:"adresse,omitempty" yaml:"adresse,omitempty"`
	Address   string `json:"address,omitempty" yaml:"address,omitempty"`
	Telephone string `json:"telephone,omitempty" yaml:"telephone,omitempty"`
	Phone     string `json:"phone,omitempty" yaml:"phone,omitempty"`
	Email     string `json:"email,omitempty" yaml:"email,omitempty"`
	Horaires  string `json:"horaires,omitempty" yaml:"horaires,omitempty"`
}

// Catalog is the on-disk catalog document
type Catalog struct {
	Brands []Brand `json:"marques" yaml:"marques"`
}

// ImageListing is the result of listing one image folder
type ImageListing struct {
	Images []string `json:"images"`
	Folder string   `json:"folder"`
	Count  int      `json:"count"`
}

// BrandFolder names an image folder under the img root
type BrandFolder struct {
	Name string `json:"name"`
	Path string `json:"path"`
}

// BulkResult is the per-folder entry of a bulk listing
type BulkResult struct {
	Name   string   `json:"name"`
	Path   string   `json:"path"`
	Error  string   `json:"error,omitempty"`
	Images []string `json:"images"`
}

// RandomImage pairs a sampled image with the folder it came from
type RandomImage struct {
	Brand string `json:"brand"`
	Image string `json:"image"`
}

// DebugPaths describes the resolved filesystem roots
type DebugPaths struct {
	PublicDir    string `json:"publicDir"`
	ImgDir       string `json:"imgDir"`
	PublicExists bool   `json:"publicExists"`
	ImgExists    bool   `json:"imgExists"`
}

// DebugFolder describes one brand folder and its image count
type DebugFolder struct {
	Name       string `json:"name"`
	Path       string `json:"path"`
	Exists     bool   `json:"exists"`
	ImageCount int    `json:"imageCount"`
}

// DebugReport is the payload of the debug endpoint
type DebugReport struct {
	Env          string        `json:"env"`
	Cwd          string        `json:"cwd"`
	Backend      string        `json:"backend"`
	Paths        DebugPaths    `json:"paths"`
	BrandFolders []DebugFolder `json:"brandFolders"`
}

// Stats summarises the catalog
type Stats struct {
	TotalBrands     int      `json:"totalMarques"`
	CategoriesCount int      `json:"categoriesCount"`
	TagsCount       int      `json:"tagsCount"`
	PopularBrands   []string `json:"popularMarques"`
}
