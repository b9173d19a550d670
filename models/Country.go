package models

// Country is static reference data resolving a listing's locationValue to a
// display label, flag glyph, region and map coordinates. Not persisted.
type Country struct {
	Value  string     `json:"value"`
	Label  string     `json:"label"`
	Flag   string     `json:"flag"`
	LatLng [2]float64 `json:"latlng"`
	Region string     `json:"region"`
}

var Countries = []Country{
	{Value: "AR", Label: "Argentina", Flag: "🇦🇷", LatLng: [2]float64{-34, -64}, Region: "Americas"},
	{Value: "AU", Label: "Australia", Flag: "🇦🇺", LatLng: [2]float64{-27, 133}, Region: "Oceania"},
	{Value: "AT", Label: "Austria", Flag: "🇦🇹", LatLng: [2]float64{47.33, 13.33}, Region: "Europe"},
	{Value: "BR", Label: "Brazil", Flag: "🇧🇷", LatLng: [2]float64{-10, -55}, Region: "Americas"},
	{Value: "CA", Label: "Canada", Flag: "🇨🇦", LatLng: [2]float64{60, -95}, Region: "Americas"},
	{Value: "CH", Label: "Switzerland", Flag: "🇨🇭", LatLng: [2]float64{47, 8}, Region: "Europe"},
	{Value: "CL", Label: "Chile", Flag: "🇨🇱", LatLng: [2]float64{-30, -71}, Region: "Americas"},
	{Value: "CN", Label: "China", Flag: "🇨🇳", LatLng: [2]float64{35, 105}, Region: "Asia"},
	{Value: "CO", Label: "Colombia", Flag: "🇨🇴", LatLng: [2]float64{4, -72}, Region: "Americas"},
	{Value: "CR", Label: "Costa Rica", Flag: "🇨🇷", LatLng: [2]float64{10, -84}, Region: "Americas"},
	{Value: "DE", Label: "Germany", Flag: "🇩🇪", LatLng: [2]float64{51, 9}, Region: "Europe"},
	{Value: "DK", Label: "Denmark", Flag: "🇩🇰", LatLng: [2]float64{56, 10}, Region: "Europe"},
	{Value: "EG", Label: "Egypt", Flag: "🇪🇬", LatLng: [2]float64{27, 30}, Region: "Africa"},
	{Value: "ES", Label: "Spain", Flag: "🇪🇸", LatLng: [2]float64{40, -4}, Region: "Europe"},
	{Value: "FI", Label: "Finland", Flag: "🇫🇮", LatLng: [2]float64{64, 26}, Region: "Europe"},
	{Value: "FR", Label: "France", Flag: "🇫🇷", LatLng: [2]float64{46, 2}, Region: "Europe"},
	{Value: "GB", Label: "United Kingdom", Flag: "🇬🇧", LatLng: [2]float64{54, -2}, Region: "Europe"},
	{Value: "GR", Label: "Greece", Flag: "🇬🇷", LatLng: [2]float64{39, 22}, Region: "Europe"},
	{Value: "HR", Label: "Croatia", Flag: "🇭🇷", LatLng: [2]float64{45.17, 15.5}, Region: "Europe"},
	{Value: "ID", Label: "Indonesia", Flag: "🇮🇩", LatLng: [2]float64{-5, 120}, Region: "Asia"},
	{Value: "IE", Label: "Ireland", Flag: "🇮🇪", LatLng: [2]float64{53, -8}, Region: "Europe"},
	{Value: "IN", Label: "India", Flag: "🇮🇳", LatLng: [2]float64{20, 77}, Region: "Asia"},
	{Value: "IS", Label: "Iceland", Flag: "🇮🇸", LatLng: [2]float64{65, -18}, Region: "Europe"},
	{Value: "IT", Label: "Italy", Flag: "🇮🇹", LatLng: [2]float64{42.83, 12.83}, Region: "Europe"},
	{Value: "JP", Label: "Japan", Flag: "🇯🇵", LatLng: [2]float64{36, 138}, Region: "Asia"},
	{Value: "KE", Label: "Kenya", Flag: "🇰🇪", LatLng: [2]float64{1, 38}, Region: "Africa"},
	{Value: "KR", Label: "South Korea", Flag: "🇰🇷", LatLng: [2]float64{37, 127.5}, Region: "Asia"},
	{Value: "MA", Label: "Morocco", Flag: "🇲🇦", LatLng: [2]float64{32, -5}, Region: "Africa"},
	{Value: "MX", Label: "Mexico", Flag: "🇲🇽", LatLng: [2]float64{23, -102}, Region: "Americas"},
	{Value: "MY", Label: "Malaysia", Flag: "🇲🇾", LatLng: [2]float64{2.5, 112.5}, Region: "Asia"},
	{Value: "NL", Label: "Netherlands", Flag: "🇳🇱", LatLng: [2]float64{52.5, 5.75}, Region: "Europe"},
	{Value: "NO", Label: "Norway", Flag: "🇳🇴", LatLng: [2]float64{62, 10}, Region: "Europe"},
	{Value: "NZ", Label: "New Zealand", Flag: "🇳🇿", LatLng: [2]float64{-41, 174}, Region: "Oceania"},
	{Value: "PE", Label: "Peru", Flag: "🇵🇪", LatLng: [2]float64{-10, -76}, Region: "Americas"},
	{Value: "PH", Label: "Philippines", Flag: "🇵🇭", LatLng: [2]float64{13, 122}, Region: "Asia"},
	{Value: "PL", Label: "Poland", Flag: "🇵🇱", LatLng: [2]float64{52, 20}, Region: "Europe"},
	{Value: "PT", Label: "Portugal", Flag: "🇵🇹", LatLng: [2]float64{39.5, -8}, Region: "Europe"},
	{Value: "SE", Label: "Sweden", Flag: "🇸🇪", LatLng: [2]float64{62, 15}, Region: "Europe"},
	{Value: "TH", Label: "Thailand", Flag: "🇹🇭", LatLng: [2]float64{15, 100}, Region: "Asia"},
	{Value: "TR", Label: "Turkey", Flag: "🇹🇷", LatLng: [2]float64{39, 35}, Region: "Asia"},
	{Value: "US", Label: "United States", Flag: "🇺🇸", LatLng: [2]float64{38, -97}, Region: "Americas"},
	{Value: "VN", Label: "Vietnam", Flag: "🇻🇳", LatLng: [2]float64{16.17, 107.83}, Region: "Asia"},
	{Value: "ZA", Label: "South Africa", Flag: "🇿🇦", LatLng: [2]float64{-29, 24}, Region: "Africa"},
}

// CountryByValue resolves a country code to its catalog entry.
func CountryByValue(value string) *Country {
	for i := range Countries {
		if Countries[i].Value == value {
			return &Countries[i]
		}
	}
	return nil
}
