package netenv

import (
	"bufio"
	"fmt"
	"os"
	"strings"

	"github.com/hashicorp/go-multierror"
)

// Nameserver describes a system assigned nameserver.
type Nameserver struct {
	Family  Family
	Address string
}

func (ns Nameserver) String() string {
	return fmt.Sprintf("%s (%s)", ns.Address, ns.Family)
}

// resolvConf holds the directives extracted from a single resolv.conf
// style file.
type resolvConf struct {
	nameservers []Nameserver
	search      []string
}

// resolvConfFiles returns the set of files to read nameservers from.
// With useResolvedConf set, the copy maintained by systemd-resolved
// replaces /etc/resolv.conf entirely.
func (ne *NetEnv) resolvConfFiles(useResolvedConf bool) []string {
	if useResolvedConf {
		return []string{ne.resolvedResolvConfPath}
	}
	return []string{ne.resolvConfPath}
}

// Nameservers returns the nameservers the system is configured with,
// in file order. With useResolvedConf set the resolv.conf maintained
// by systemd-resolved is read instead of /etc/resolv.conf.
//
// Files that are missing or not accessible are skipped. Any other read
// failure is returned, combined if more than one file failed, with all
// files attempted regardless and entries from healthy files returned
// in any case.
func (ne *NetEnv) Nameservers(useResolvedConf bool) ([]Nameserver, error) {
	var combined *multierror.Error

	servers := make([]Nameserver, 0)
	for _, path := range ne.resolvConfFiles(useResolvedConf) {
		rc, err := ne.readResolvConf(path)
		if err != nil {
			combined = multierror.Append(combined, err)
			continue
		}
		ne.log.Verbosef("netenv: %s lists %d nameservers", path, len(rc.nameservers))
		servers = append(servers, rc.nameservers...)
	}
	return servers, combined.ErrorOrNil()
}

// RandomNameserver returns one of the configured nameservers, selected
// uniformly at random. A single configured server is returned as is.
// Without any configured server the local resolver at 127.0.0.1 is
// returned.
func (ne *NetEnv) RandomNameserver(useResolvedConf bool) (Nameserver, error) {
	servers, err := ne.Nameservers(useResolvedConf)
	if err != nil {
		return Nameserver{}, err
	}

	switch len(servers) {
	case 0:
		return Nameserver{Family: FamilyIPv4, Address: "127.0.0.1"}, nil
	case 1:
		return servers[0], nil
	}

	ne.rngLock.Lock()
	defer ne.rngLock.Unlock()
	ne.rng.Shuffle(len(servers), func(i, j int) {
		servers[i], servers[j] = servers[j], servers[i]
	})
	return servers[0], nil
}

// readResolvConf extracts the nameserver and search directives from
// the given file. A file that is missing or not accessible yields an
// empty result, machines without one are common.
func (ne *NetEnv) readResolvConf(path string) (*resolvConf, error) {
	// open file
	file, err := os.Open(path)
	if err != nil {
		if os.IsNotExist(err) || os.IsPermission(err) {
			ne.log.Tracef("netenv: skipping %s: %s", path, err)
			return &resolvConf{}, nil
		}
		return nil, fmt.Errorf("failed to open %s: %w", path, err)
	}
	defer func() {
		_ = file.Close()
	}()

	// file scanner
	scanner := bufio.NewScanner(file)
	scanner.Split(bufio.ScanLines)

	rc := &resolvConf{}

	// parse
	for scanner.Scan() {
		words := strings.Fields(strings.ToLower(scanner.Text()))
		if len(words) < 2 {
			continue
		}
		switch words[0] {
		case "nameserver":
			rc.nameservers = append(rc.nameservers, Nameserver{
				Family:  FamilyOf(words[1]),
				Address: words[1],
			})
		case "search":
			rc.search = append(rc.search, words[1:]...)
		}
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("failed to read %s: %w", path, err)
	}

	return rc, nil
}
