package doctor

type Doctor struct {
	ID              string   `json:"id"`
	Name            string   `json:"name"`
	Title           string   `json:"title"`
	YearsExperience int      `json:"years_experience"`
	City            string   `json:"city"`
	Formats         []string `json:"formats"`
	Languages       []string `json:"languages"`
	PhotoURL        string   `json:"photo_url"`
	Bio             string   `json:"bio"`
}

type Award struct {
	ID          string `json:"id"`
	Type        string `json:"type"` // diploma | certificate | award | publication
	Title       string `json:"title"`
	Issuer      string `json:"issuer"`
	Date        string `json:"date"`
	ImageURL    string `json:"image_url"`
	Description string `json:"description,omitempty"`
}

type ReviewAsset struct {
	ID       string `json:"id"`
	ImageURL string `json:"image_url"`
	Source   string `json:"source,omitempty"`
	Date     string `json:"date,omitempty"`
	Caption  string `json:"caption,omitempty"`
}

type ReviewList struct {
	Items []ReviewAsset `json:"items"`
	Total int           `json:"total"`
}

// Catalog is the immutable content bundle served by the read-only
// endpoints. It is built once at startup and injected into the HTTP
// layer; nothing mutates it afterwards.
type Catalog struct {
	Doctor  Doctor
	Awards  []Award
	Reviews []ReviewAsset
}
