package service

import (
	"context"
	"sort"
	"strings"
	"time"

	"github.com/aussiebroadwan/vaultshare/internal/vault/domain"
	"github.com/aussiebroadwan/vaultshare/internal/vault/store"
)

// Paging defaults for the admin user list.
const (
	DefaultPageLimit = 10
	MaxPageLimit     = 100
)

// UserPage is one page of the admin user list.
type UserPage struct {
	Users       []domain.UserSummary
	TotalItems  int
	CurrentPage int
	TotalPages  int
}

// MonthlyCount is the number of registrations in one calendar month.
type MonthlyCount struct {
	Month string
	Year  int
	Value int
}

// RegistrationStats groups registrations by month. Years are newest first;
// months ascend within a year.
type RegistrationStats struct {
	Years []int
	Data  []MonthlyCount
}

// DomainBucket is the number of stored accounts for a domain group.
type DomainBucket struct {
	Domain string
	Value  int
}

// Domain buckets reported by AccountsByDomain, in output order.
var domainBuckets = []string{"gmail.com", "facebook.com", "outlook.com", "edu.vn", "others"}

// AdminService backs the administrator views.
type AdminService struct {
	Store store.Store
}

// ClampPage normalises page and limit to the accepted range.
func ClampPage(page, limit int) (int, int) {
	if page < 1 {
		page = 1
	}
	if limit < 1 {
		limit = DefaultPageLimit
	}
	if limit > MaxPageLimit {
		limit = MaxPageLimit
	}
	return page, limit
}

// ListUsers pages through regular users, newest first.
func (s *AdminService) ListUsers(ctx context.Context, page, limit int) (UserPage, error) {
	page, limit = ClampPage(page, limit)

	total, err := s.Store.Users().CountUsersByRole(ctx, domain.RoleUser)
	if err != nil {
		return UserPage{}, err
	}

	users, err := s.Store.Users().ListUserSummaries(ctx, domain.RoleUser, limit, (page-1)*limit)
	if err != nil {
		return UserPage{}, err
	}

	return UserPage{
		Users:       users,
		TotalItems:  total,
		CurrentPage: page,
		TotalPages:  (total + limit - 1) / limit,
	}, nil
}

// UserRegistrations counts non-admin registrations per month.
func (s *AdminService) UserRegistrations(ctx context.Context) (RegistrationStats, error) {
	times, err := s.Store.Users().ListRegistrationTimes(ctx, domain.RoleAdmin)
	if err != nil {
		return RegistrationStats{}, err
	}

	type ym struct{ year, month int }
	counts := make(map[ym]int)
	for _, t := range times {
		counts[ym{t.Year(), int(t.Month())}]++
	}

	keys := make([]ym, 0, len(counts))
	for k := range counts {
		keys = append(keys, k)
	}
	sort.Slice(keys, func(i, j int) bool {
		if keys[i].year != keys[j].year {
			return keys[i].year > keys[j].year
		}
		return keys[i].month < keys[j].month
	})

	stats := RegistrationStats{Years: []int{}, Data: make([]MonthlyCount, 0, len(keys))}
	for _, k := range keys {
		if n := len(stats.Years); n == 0 || stats.Years[n-1] != k.year {
			stats.Years = append(stats.Years, k.year)
		}
		stats.Data = append(stats.Data, MonthlyCount{
			Month: time.Month(k.month).String(),
			Year:  k.year,
			Value: counts[k],
		})
	}
	return stats, nil
}

// AccountsByDomain folds live accounts into the fixed domain buckets. Any
// *.edu.vn domain counts as edu.vn.
func (s *AdminService) AccountsByDomain(ctx context.Context) ([]DomainBucket, error) {
	counts, err := s.Store.Accounts().CountAccountsByDomain(ctx)
	if err != nil {
		return nil, err
	}

	totals := make(map[string]int, len(domainBuckets))
	for _, c := range counts {
		totals[bucketFor(c.Domain)] += c.Count
	}

	out := make([]DomainBucket, 0, len(domainBuckets))
	for _, b := range domainBuckets {
		out = append(out, DomainBucket{Domain: b, Value: totals[b]})
	}
	return out, nil
}

func bucketFor(d string) string {
	d = strings.ToLower(strings.TrimSpace(d))
	if strings.HasSuffix(d, ".edu.vn") {
		return "edu.vn"
	}
	switch d {
	case "gmail.com", "facebook.com", "outlook.com", "edu.vn":
		return d
	}
	return "others"
}
