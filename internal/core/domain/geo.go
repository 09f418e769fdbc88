package domain

// GeoData is the resolved location of a client IP.
type GeoData struct {
	IP          string  `json:"ip"`
	Country     string  `json:"country"`
	CountryCode string  `json:"country_code"`
	Region      string  `json:"region"`
	City        string  `json:"city"`
	Latitude    float64 `json:"latitude"`
	Longitude   float64 `json:"longitude"`
	Timezone    string  `json:"timezone"`
	ISP         string  `json:"isp"`
	Org         string  `json:"org"`
	ASN         string  `json:"asn"`
	IsVPNProxy  bool    `json:"is_vpn_proxy"` // proxy or hosting provider
}

// HasCoordinates is false for the 0,0 placeholder some providers return.
func (g *GeoData) HasCoordinates() bool {
	return g != nil && (g.Latitude != 0 || g.Longitude != 0)
}
