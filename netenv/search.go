package netenv

import (
	"fmt"
	"strings"

	"github.com/hashicorp/go-multierror"
	"github.com/miekg/dns"
	"golang.org/x/net/publicsuffix"
)

// Limit search domains to mitigate exploitation via a malicious
// resolv.conf.
const maxSearchDomains = 100

// SearchDomains returns the DNS search domains the system is
// configured with, validated and in fqdn notation. The same file set
// as for Nameservers applies, as does the error behavior. Domains that
// are malformed or dangerously high up the hierarchy are dropped.
func (ne *NetEnv) SearchDomains(useResolvedConf bool) ([]string, error) {
	var combined *multierror.Error

	domains := make([]string, 0)
	for _, path := range ne.resolvConfFiles(useResolvedConf) {
		rc, err := ne.readResolvConf(path)
		if err != nil {
			combined = multierror.Append(combined, err)
			continue
		}
		for _, value := range rc.search {
			trimmed := strings.Trim(value, ".")
			if err := checkSearchScope(trimmed); err != nil {
				ne.log.Debugf("netenv: skipping search domain %q: %s", value, err)
				continue
			}
			domains = append(domains, dns.Fqdn(trimmed))
		}
	}

	if len(domains) > maxSearchDomains {
		ne.log.Debugf("netenv: limiting search domains to %d", maxSearchDomains)
		domains = domains[:maxSearchDomains]
	}
	return domains, combined.ErrorOrNil()
}

func checkSearchScope(searchDomain string) error {
	// Sanity check the input.
	if len(searchDomain) == 0 ||
		searchDomain[0] == '.' ||
		searchDomain[len(searchDomain)-1] == '.' {
		return fmt.Errorf("invalid search domain: %s", searchDomain)
	}
	if _, ok := dns.IsDomainName(searchDomain); !ok {
		return fmt.Errorf("invalid search domain: %s", searchDomain)
	}

	// In order to check if the search domain is too high up in the
	// hierarchy, we need to add some more subdomains.
	augmentedSearchDomain := "*.*.*.*.*." + searchDomain

	// Get the public suffix of the search domain and whether the TLD is
	// managed by ICANN.
	suffix, icann := publicsuffix.PublicSuffix(augmentedSearchDomain)
	if len(suffix) == 0 {
		return fmt.Errorf("invalid search domain: %s", searchDomain)
	}

	// TLDs that are not managed by ICANN (ie. are unofficial) may be
	// used fully as a search domain.
	if !icann && !strings.Contains(suffix, ".") {
		return nil
	}

	// Build the eTLD+1 domain, which is the highest that may be used.
	split := len(augmentedSearchDomain) - len(suffix) - 1
	eTLDplus1 := augmentedSearchDomain[1+strings.LastIndex(augmentedSearchDomain[:split], "."):]

	// The scope is violated if the eTLD+1 still contains a wildcard.
	if strings.Contains(eTLDplus1, "*") {
		return fmt.Errorf("search domain %q is too high up the hierarchy, stay at or below %q", searchDomain, eTLDplus1)
	}

	return nil
}
