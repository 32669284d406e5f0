package service

import (
	"context"
	"crypto/tls"
	"fmt"
	"strings"
	"time"

	"guard-deployment-backend/internal/config"
	"guard-deployment-backend/internal/database/models"
	"guard-deployment-backend/internal/repository"

	"github.com/go-ldap/ldap/v3"
	"github.com/google/uuid"
)

// ldapClient is the subset of *ldap.Conn the directory uses
type ldapClient interface {
	Bind(username, password string) error
	Search(searchRequest *ldap.SearchRequest) (*ldap.SearchResult, error)
	Close() error
	SetTimeout(d time.Duration)
}

var dialLDAP = func(network, addr string, cfg *tls.Config) (ldapClient, error) {
	return ldap.DialTLS(network, addr, cfg)
}

// SiteGroupName is the directory group whose members are deployed to a site
func SiteGroupName(site *models.Site) string {
	return "site-" + strings.ToLower(site.Code)
}

// LDAPSiteDirectory confirms site membership from the corporate directory:
// a worker belongs to a site when their account is a member of the site's
// group.
type LDAPSiteDirectory struct {
	cfg     *config.Config
	workers repository.WorkerRepositoryInterface
	sites   repository.SiteRepositoryInterface
}

// NewLDAPSiteDirectory creates a new LDAP-backed membership lookup
func NewLDAPSiteDirectory(cfg *config.Config, workers repository.WorkerRepositoryInterface, sites repository.SiteRepositoryInterface) *LDAPSiteDirectory {
	return &LDAPSiteDirectory{cfg: cfg, workers: workers, sites: sites}
}

// IsWorkerAssignedToSite implements repository.SiteMembershipLookup
func (d *LDAPSiteDirectory) IsWorkerAssignedToSite(ctx context.Context, workerID, siteID uuid.UUID) (bool, error) {
	if !d.cfg.LDAPEnabled() {
		return false, nil
	}

	worker, err := d.workers.GetByID(ctx, workerID)
	if err != nil {
		return false, fmt.Errorf("failed to get worker: %w", err)
	}
	if worker.Username == "" {
		return false, nil
	}
	site, err := d.sites.GetByID(ctx, siteID)
	if err != nil {
		return false, fmt.Errorf("failed to get site: %w", err)
	}

	groups, err := d.memberOf(ctx, worker.Username)
	if err != nil {
		return false, err
	}
	want := SiteGroupName(site)
	for _, g := range groups {
		if strings.EqualFold(g, want) {
			return true, nil
		}
	}
	return false, nil
}

// memberOf returns the common names of the groups the account belongs to
func (d *LDAPSiteDirectory) memberOf(ctx context.Context, username string) ([]string, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	addr := d.cfg.LDAPHost + ":" + d.cfg.LDAPPort
	l, err := dialLDAP("tcp", addr, &tls.Config{InsecureSkipVerify: d.cfg.LDAPInsecureSkipVerify})
	if err != nil {
		return nil, fmt.Errorf("failed to connect to LDAP: %w", err)
	}
	defer l.Close()

	timeout := time.Duration(d.cfg.LDAPTimeoutSec) * time.Second
	if deadline, ok := ctx.Deadline(); ok {
		if left := time.Until(deadline); timeout <= 0 || left < timeout {
			timeout = left
		}
	}
	if timeout > 0 {
		l.SetTimeout(timeout)
	}

	if err := l.Bind(d.cfg.LDAPBindDN, d.cfg.LDAPBindPW); err != nil {
		return nil, fmt.Errorf("failed to bind to LDAP: %w", err)
	}

	name := ldap.EscapeFilter(username)
	req := ldap.NewSearchRequest(
		d.cfg.LDAPBaseDN,
		ldap.ScopeWholeSubtree,
		ldap.NeverDerefAliases,
		1,
		int(timeout/time.Second),
		false,
		"(|(uid="+name+")(sAMAccountName="+name+"))",
		[]string{"memberOf"},
		nil,
	)

	res, err := l.Search(req)
	if err != nil {
		return nil, fmt.Errorf("failed to search LDAP: %w", err)
	}
	if len(res.Entries) == 0 {
		return nil, nil
	}

	var groups []string
	for _, dn := range res.Entries[0].GetAttributeValues("memberOf") {
		parsed, err := ldap.ParseDN(dn)
		if err != nil || len(parsed.RDNs) == 0 {
			continue
		}
		for _, attr := range parsed.RDNs[0].Attributes {
			if strings.EqualFold(attr.Type, "cn") {
				groups = append(groups, attr.Value)
			}
		}
	}
	return groups, nil
}
