package whitelist

import (
	"net"
	"regexp"
	"sort"
	"strings"
	"sync"
)

type rule struct {
	re   *regexp.Regexp
	cidr *net.IPNet
}

func (r rule) match(ip string) bool {
	if r.cidr != nil {
		parsed := net.ParseIP(ip)
		return parsed != nil && r.cidr.Contains(parsed)
	}
	return r.re.MatchString(ip)
}

var (
	lock  sync.RWMutex
	rules = map[string]rule{}
)

func compile(pattern string) (rule, error) {
	if strings.Contains(pattern, "/") {
		_, n, err := net.ParseCIDR(pattern)
		if err != nil {
			return rule{}, err
		}
		return rule{cidr: n}, nil
	}
	re, err := regexp.Compile("^" + pattern + "$")
	if err != nil {
		return rule{}, err
	}
	return rule{re: re}, nil
}

// Setup registers every pattern, a pattern is either a CIDR block or a
// regular expression matched against the whole address.
func Setup(list []string) error {
	lock.Lock()
	defer lock.Unlock()

	for _, ip := range list {
		r, err := compile(ip)
		if err != nil {
			return err
		}
		rules[ip] = r
	}

	return nil
}

// VerifyIP check the ip is a legal ip or not, a trailing port is ignored
func VerifyIP(addr string) bool {
	ip := addr
	if host, _, err := net.SplitHostPort(addr); err == nil {
		ip = host
	}

	lock.RLock()
	defer lock.RUnlock()

	for _, r := range rules {
		if r.match(ip) {
			return true
		}
	}
	return false
}

func RegisterIP(ip string) error {
	lock.Lock()
	defer lock.Unlock()

	if _, ok := rules[ip]; ok {
		return nil
	}

	r, err := compile(ip)
	if err != nil {
		return err
	}
	rules[ip] = r
	return nil
}

func RemoveIP(ip string) {
	lock.Lock()
	defer lock.Unlock()

	delete(rules, ip)
}

func IPList() []string {
	lock.RLock()
	defer lock.RUnlock()

	list := []string{}
	for ip := range rules {
		list = append(list, ip)
	}
	sort.Strings(list)

	return list
}

func ClearIPList() {
	lock.Lock()
	defer lock.Unlock()

	rules = map[string]rule{}
}
