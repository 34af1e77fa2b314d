package service

import (
	"strings"

	"github.com/tlv300/whois-be/internal/model"
)

// Hostnames longer than this are truncated with an ellipsis before joining.
const maxHostnameLength = 25

// pick returns the first non-empty value. Callers pass the registrar-level
// field before its registry-level fallback.
func pick(values ...string) string {
	for _, v := range values {
		if v != "" {
			return v
		}
	}
	return ""
}

func extractDomainInfo(rec *model.WhoisRecord) *model.DomainInfo {
	reg := rec.RegistryData
	if reg == nil {
		reg = &model.RegistryData{}
	}

	registrar := pick(rec.RegistrarName, reg.RegistrarName)
	if registrar == "" && rec.Registrar != nil {
		registrar = rec.Registrar.Name
	}

	// Provider-reported estimate, never derived from the two dates.
	age := rec.EstimatedDomainAge
	if age == nil {
		age = reg.EstimatedDomainAge
	}

	return &model.DomainInfo{
		DomainName:         pick(rec.DomainName, reg.DomainName),
		Registrar:          registrar,
		RegistrationDate:   pick(rec.CreatedDate, reg.CreatedDate),
		ExpirationDate:     pick(rec.ExpiresDate, reg.ExpiresDate),
		EstimatedDomainAge: age,
		Hostnames:          normalizeHostnames(rec),
	}
}

func extractContactInfo(rec *model.WhoisRecord) *model.ContactInfo {
	info := &model.ContactInfo{}
	if rec.Registrant != nil {
		info.RegistrantName = rec.Registrant.Name
	}
	if rec.TechnicalContact != nil {
		info.TechnicalContactName = rec.TechnicalContact.Name
	}
	if rec.AdministrativeContact != nil {
		info.AdministrativeContactName = rec.AdministrativeContact.Name
	}

	info.ContactEmail = rec.ContactEmail
	if info.ContactEmail == "" && rec.Registrant != nil {
		info.ContactEmail = rec.Registrant.Email
	}

	return info
}

// normalizeHostnames flattens the provider's name-server list into one
// comma-joined string in provider order, no dedupe or sorting.
func normalizeHostnames(rec *model.WhoisRecord) string {
	hosts := hostnamesFrom(rec.NameServers)
	if len(hosts) == 0 && rec.RegistryData != nil {
		hosts = hostnamesFrom(rec.RegistryData.NameServers)
	}
	if len(hosts) == 0 {
		return ""
	}

	truncated := make([]string, len(hosts))
	for i, h := range hosts {
		truncated[i] = truncate(h, maxHostnameLength)
	}
	return strings.Join(truncated, ", ")
}

func hostnamesFrom(ns *model.NameServers) []string {
	if ns == nil {
		return nil
	}
	if len(ns.HostNames) > 0 {
		return ns.HostNames
	}
	return model.SplitHosts(ns.RawText)
}

func truncate(value string, max int) string {
	if len(value) <= max {
		return value
	}
	return value[:max-3] + "..."
}
