// Package entity contains the core business objects of the project.
package entity

import "strings"

// PostalAddress is a structured Korean postal address.
type PostalAddress struct {
	Province      string `json:"province"`                // 시/도
	City          string `json:"city"`                    // 시/군/구
	District      string `json:"district"`                // 동/읍/면
	DetailAddress string `json:"detail_address,omitempty"` // 상세주소
}

// FullAddress joins every part with spaces, omitting a blank detail.
func (a PostalAddress) FullAddress() string {
	parts := []string{a.Province, a.City, a.District}
	if strings.TrimSpace(a.DetailAddress) != "" {
		parts = append(parts, a.DetailAddress)
	}

	return strings.Join(parts, " ")
}

// AreaAddress is the province/city/district part used for region filtering.
func (a PostalAddress) AreaAddress() string {
	return strings.Join([]string{a.Province, a.City, a.District}, " ")
}

// IsValid checks that province, city and district are all present.
func (a PostalAddress) IsValid() bool {
	return strings.TrimSpace(a.Province) != "" &&
		strings.TrimSpace(a.City) != "" &&
		strings.TrimSpace(a.District) != ""
}
