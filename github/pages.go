package github

import (
	"slices"
	"strconv"

	"github.com/jmgilman/ghrest/github/field"
)

// PagesStatus is the build state of a Pages site.
type PagesStatus int

const (
	PagesStatusUnset PagesStatus = iota
	PagesStatusBuilt
	PagesStatusBuilding
	PagesStatusErrored
)

var pagesStatusTable = field.NewEnumTable("pages_status", map[PagesStatus]string{
	PagesStatusBuilt:    "built",
	PagesStatusBuilding: "building",
	PagesStatusErrored:  "errored",
})

// String returns the wire value, or "" when unset.
func (v PagesStatus) String() string {
	return pagesStatusTable.Wire(v)
}

// PagesProtectedDomainState is the verification state of a Pages custom domain.
type PagesProtectedDomainState int

const (
	ProtectedDomainUnset PagesProtectedDomainState = iota
	ProtectedDomainPending
	ProtectedDomainVerified
	ProtectedDomainUnverified
)

var pagesProtectedDomainStateTable = field.NewEnumTable("protected_domain_state", map[PagesProtectedDomainState]string{
	ProtectedDomainPending:    "pending",
	ProtectedDomainVerified:   "verified",
	ProtectedDomainUnverified: "unverified",
})

// String returns the wire value, or "" when unset.
func (v PagesProtectedDomainState) String() string {
	return pagesProtectedDomainStateTable.Wire(v)
}

// PagesBuildType is how a Pages site is built.
type PagesBuildType int

const (
	PagesBuildUnset PagesBuildType = iota
	PagesBuildLegacy
	PagesBuildWorkflow
)

var pagesBuildTypeTable = field.NewEnumTable("build_type", map[PagesBuildType]string{
	PagesBuildLegacy:   "legacy",
	PagesBuildWorkflow: "workflow",
})

// String returns the wire value, or "" when unset.
func (v PagesBuildType) String() string {
	return pagesBuildTypeTable.Wire(v)
}

// PagesBuildStatus is the state of a single Pages build.
type PagesBuildStatus int

const (
	PagesBuildStatusUnset PagesBuildStatus = iota
	PagesBuildStatusQueued
	PagesBuildStatusBuilding
	PagesBuildStatusBuilt
	PagesBuildStatusErrored
)

var pagesBuildStatusTable = field.NewEnumTable("pages_build_status", map[PagesBuildStatus]string{
	PagesBuildStatusQueued:   "queued",
	PagesBuildStatusBuilding: "building",
	PagesBuildStatusBuilt:    "built",
	PagesBuildStatusErrored:  "errored",
})

// String returns the wire value, or "" when unset.
func (v PagesBuildStatus) String() string {
	return pagesBuildStatusTable.Wire(v)
}

// PagesSourceFields holds the attributes of a PagesSource.
type PagesSourceFields struct {
	Branch string
	Path   string
}

// PagesSource is the branch and directory a legacy Pages site publishes
// from. It is also the payload of the source member when creating or
// updating a site.
type PagesSource struct {
	f PagesSourceFields
}

// NewPagesSource returns a PagesSource with the given attributes.
func NewPagesSource(f PagesSourceFields) *PagesSource {
	return &PagesSource{f: f}
}

// DecodePagesSource builds a PagesSource from its JSON object.
func DecodePagesSource(obj field.Object) (*PagesSource, error) {
	return NewPagesSource(PagesSourceFields{
		Branch: obj.StringValue("branch"),
		Path:   obj.StringValue("path"),
	}), nil
}

// Branch returns the publishing branch.
func (s *PagesSource) Branch() string {
	return s.f.Branch
}

// Path returns the publishing directory, "/" or "/docs".
func (s *PagesSource) Path() string {
	return s.f.Path
}
// PagesHTTPSCertificateFields holds the attributes of a
// PagesHTTPSCertificate.
type PagesHTTPSCertificateFields struct {
	State       string
	Description string
	Domains     []string
	ExpiresAt   string
}

// PagesHTTPSCertificate is the TLS certificate GitHub provisions for a
// custom domain. State is kept as the wire string because GitHub adds
// provisioning states without notice.
type PagesHTTPSCertificate struct {
	f PagesHTTPSCertificateFields
}

// NewPagesHTTPSCertificate returns a PagesHTTPSCertificate with the given
// attributes.
func NewPagesHTTPSCertificate(f PagesHTTPSCertificateFields) *PagesHTTPSCertificate {
	f.Domains = slices.Clone(f.Domains)
	return &PagesHTTPSCertificate{f: f}
}

// DecodePagesHTTPSCertificate builds a PagesHTTPSCertificate from its JSON
// object.
func DecodePagesHTTPSCertificate(obj field.Object) (*PagesHTTPSCertificate, error) {
	return NewPagesHTTPSCertificate(PagesHTTPSCertificateFields{
		State:       obj.StringValue("state"),
		Description: obj.StringValue("description"),
		Domains:     obj.Strings("domains"),
		ExpiresAt:   obj.StringValue("expires_at"),
	}), nil
}

// State returns the provisioning state, such as "approved".
func (c *PagesHTTPSCertificate) State() string {
	return c.f.State
}

// Description returns a human-readable description of the state.
func (c *PagesHTTPSCertificate) Description() string {
	return c.f.Description
}

// Domains returns the domains the certificate covers.
func (c *PagesHTTPSCertificate) Domains() []string {
	return slices.Clone(c.f.Domains)
}

// ExpiresAt returns the expiry date (YYYY-MM-DD), or "".
func (c *PagesHTTPSCertificate) ExpiresAt() string {
	return c.f.ExpiresAt
}
// PagesSiteFields holds the attributes of a PagesSite.
type PagesSiteFields struct {
	URL                       string
	HTMLURL                   string
	Status                    PagesStatus
	CNAME                     *string
	ProtectedDomainState      PagesProtectedDomainState
	PendingDomainUnverifiedAt field.Timestamp
	Custom404                 bool
	BuildType                 PagesBuildType
	Source                    *PagesSource
	Public                    bool
	HTTPSCertificate          *PagesHTTPSCertificate
	HTTPSEnforced             bool
}

// PagesSite is the GitHub Pages configuration of a repository.
type PagesSite struct {
	f PagesSiteFields
}

// NewPagesSite returns a PagesSite with the given attributes.
func NewPagesSite(f PagesSiteFields) *PagesSite {
	return &PagesSite{f: f}
}

// DecodePagesSite builds a PagesSite from its JSON object.
func DecodePagesSite(obj field.Object) (*PagesSite, error) {
	d := newDecoder("PagesSite", obj)
	f := PagesSiteFields{
		URL:                       obj.StringValue("url"),
		HTMLURL:                   obj.StringValue("html_url"),
		Status:                    readEnum(d, pagesStatusTable, "status"),
		CNAME:                     obj.String("cname"),
		ProtectedDomainState:      readEnum(d, pagesProtectedDomainStateTable, "protected_domain_state"),
		PendingDomainUnverifiedAt: obj.Timestamp("pending_domain_unverified_at"),
		Custom404:                 obj.Bool("custom_404"),
		BuildType:                 readEnum(d, pagesBuildTypeTable, "build_type"),
		Source:                    readNested(d, "source", DecodePagesSource),
		Public:                    obj.Bool("public"),
		HTTPSCertificate:          readNested(d, "https_certificate", DecodePagesHTTPSCertificate),
		HTTPSEnforced:             obj.Bool("https_enforced"),
	}
	if d.err != nil {
		return nil, d.err
	}
	return NewPagesSite(f), nil
}

// URL returns the API URL.
func (s *PagesSite) URL() string {
	return s.f.URL
}

// HTMLURL returns the published site URL.
func (s *PagesSite) HTMLURL() string {
	return s.f.HTMLURL
}

// Status returns the latest build state, unset before the first build.
func (s *PagesSite) Status() PagesStatus {
	return s.f.Status
}

// CNAME returns the custom domain, or nil.
func (s *PagesSite) CNAME() *string {
	return s.f.CNAME
}

// ProtectedDomainState returns the custom domain verification state.
func (s *PagesSite) ProtectedDomainState() PagesProtectedDomainState {
	return s.f.ProtectedDomainState
}

// PendingDomainUnverifiedAt returns when a pending domain becomes unverified.
func (s *PagesSite) PendingDomainUnverifiedAt() field.Timestamp {
	return s.f.PendingDomainUnverifiedAt
}

// Custom404 reports whether the site has a custom 404 page.
func (s *PagesSite) Custom404() bool {
	return s.f.Custom404
}

// BuildType returns how the site is built.
func (s *PagesSite) BuildType() PagesBuildType {
	return s.f.BuildType
}

// Source returns the publishing source of a legacy site, or nil.
func (s *PagesSite) Source() *PagesSource {
	return s.f.Source
}

// IsPublic reports whether the site is publicly visible.
func (s *PagesSite) IsPublic() bool {
	return s.f.Public
}

// HTTPSCertificate returns the custom domain certificate, or nil.
func (s *PagesSite) HTTPSCertificate() *PagesHTTPSCertificate {
	return s.f.HTTPSCertificate
}

// HTTPSEnforced reports whether HTTP requests redirect to HTTPS.
func (s *PagesSite) HTTPSEnforced() bool {
	return s.f.HTTPSEnforced
}
// PagesBuildFields holds the attributes of a PagesBuild.
type PagesBuildFields struct {
	URL          string
	Status       PagesBuildStatus
	ErrorMessage *string
	Pusher       *User
	Commit       string
	Duration     int
	CreatedAt    field.Timestamp
	UpdatedAt    field.Timestamp
}

// PagesBuild is one build of a legacy Pages site. Requesting a build
// returns only URL and Status.
type PagesBuild struct {
	f PagesBuildFields
}

// NewPagesBuild returns a PagesBuild with the given attributes.
func NewPagesBuild(f PagesBuildFields) *PagesBuild {
	return &PagesBuild{f: f}
}

// DecodePagesBuild builds a PagesBuild from its JSON object.
func DecodePagesBuild(obj field.Object) (*PagesBuild, error) {
	d := newDecoder("PagesBuild", obj)
	f := PagesBuildFields{
		URL:          obj.StringValue("url"),
		Status:       readEnum(d, pagesBuildStatusTable, "status"),
		ErrorMessage: obj.Object("error").String("message"),
		Pusher:       readNested(d, "pusher", DecodeUser),
		Commit:       obj.StringValue("commit"),
		Duration:     obj.Int("duration", 0),
		CreatedAt:    obj.Timestamp("created_at"),
		UpdatedAt:    obj.Timestamp("updated_at"),
	}
	if d.err != nil {
		return nil, d.err
	}
	return NewPagesBuild(f), nil
}

// URL returns the API URL of the build.
func (b *PagesBuild) URL() string {
	return b.f.URL
}

// Status returns the build state.
func (b *PagesBuild) Status() PagesBuildStatus {
	return b.f.Status
}

// ErrorMessage returns the failure message, or nil when the build did not fail.
func (b *PagesBuild) ErrorMessage() *string {
	return b.f.ErrorMessage
}

// Pusher returns the account whose push triggered the build, or nil.
func (b *PagesBuild) Pusher() *User {
	return b.f.Pusher
}

// Commit returns the SHA that was built.
func (b *PagesBuild) Commit() string {
	return b.f.Commit
}

// Duration returns the build time in milliseconds.
func (b *PagesBuild) Duration() int {
	return b.f.Duration
}

// CreatedAt returns when the build was queued.
func (b *PagesBuild) CreatedAt() field.Timestamp {
	return b.f.CreatedAt
}

// UpdatedAt returns when the build last changed state.
func (b *PagesBuild) UpdatedAt() field.Timestamp {
	return b.f.UpdatedAt
}
// PagesDeploymentFields holds the attributes of a PagesDeployment.
type PagesDeploymentFields struct {
	ID         string
	StatusURL  string
	PageURL    string
	PreviewURL *string
}

// PagesDeployment is a deployment of a workflow-built Pages site.
type PagesDeployment struct {
	f PagesDeploymentFields
}

// NewPagesDeployment returns a PagesDeployment with the given attributes.
func NewPagesDeployment(f PagesDeploymentFields) *PagesDeployment {
	return &PagesDeployment{f: f}
}

// DecodePagesDeployment builds a PagesDeployment from its JSON object.
// GitHub sends the id either as a number or as a string; both are kept as
// their decimal text.
func DecodePagesDeployment(obj field.Object) (*PagesDeployment, error) {
	id := obj.StringValue("id")
	if id == "" && obj.Has("id") && !obj.IsNull("id") {
		id = strconv.FormatInt(obj.Int64("id", 0), 10)
	}
	return NewPagesDeployment(PagesDeploymentFields{
		ID:         id,
		StatusURL:  obj.StringValue("status_url"),
		PageURL:    obj.StringValue("page_url"),
		PreviewURL: obj.String("preview_url"),
	}), nil
}

// ID returns the deployment id.
func (d *PagesDeployment) ID() string {
	return d.f.ID
}

// StatusURL returns the URL that reports deployment progress.
func (d *PagesDeployment) StatusURL() string {
	return d.f.StatusURL
}

// PageURL returns the URL of the deployed site.
func (d *PagesDeployment) PageURL() string {
	return d.f.PageURL
}

// PreviewURL returns the preview URL, or nil.
func (d *PagesDeployment) PreviewURL() *string {
	return d.f.PreviewURL
}
// PagesDomainHealthFields holds the attributes of a PagesDomainHealth.
type PagesDomainHealthFields struct {
	Host        string
	URI         string
	Nameservers string
	Reason      *string
	HTTPSError  *string
	CAAError    *string

	DNSResolves                   bool
	IsProxied                     bool
	IsCloudflareIP                bool
	IsFastlyIP                    bool
	IsOldIPAddress                bool
	IsARecord                     bool
	HasCNAMERecord                bool
	HasMXRecordsPresent           bool
	IsValidDomain                 bool
	IsApexDomain                  bool
	ShouldBeARecord               bool
	IsCNAMEToGitHubUserDomain     bool
	IsCNAMEToPagesDotGitHubDotCom bool
	IsCNAMEToFastly               bool
	IsPointedToGitHubPagesIP      bool
	IsNonGitHubPagesIPPresent     bool
	IsPagesDomain                 bool
	IsServedByPages               bool
	IsValid                       bool
	RespondsToHTTPS               bool
	EnforcesHTTPS                 bool
	IsHTTPSEligible               bool
}

// PagesDomainHealth is the DNS and TLS diagnosis of one Pages domain. A
// check GitHub could not run reads as false.
type PagesDomainHealth struct {
	f PagesDomainHealthFields
}

// NewPagesDomainHealth returns a PagesDomainHealth with the given
// attributes.
func NewPagesDomainHealth(f PagesDomainHealthFields) *PagesDomainHealth {
	return &PagesDomainHealth{f: f}
}

// DecodePagesDomainHealth builds a PagesDomainHealth from its JSON object.
func DecodePagesDomainHealth(obj field.Object) (*PagesDomainHealth, error) {
	return NewPagesDomainHealth(PagesDomainHealthFields{
		Host:        obj.StringValue("host"),
		URI:         obj.StringValue("uri"),
		Nameservers: obj.StringValue("nameservers"),
		Reason:      obj.String("reason"),
		HTTPSError:  obj.String("https_error"),
		CAAError:    obj.String("caa_error"),

		DNSResolves:                   obj.Bool("dns_resolves"),
		IsProxied:                     obj.Bool("is_proxied"),
		IsCloudflareIP:                obj.Bool("is_cloudflare_ip"),
		IsFastlyIP:                    obj.Bool("is_fastly_ip"),
		IsOldIPAddress:                obj.Bool("is_old_ip_address"),
		IsARecord:                     obj.Bool("is_a_record"),
		HasCNAMERecord:                obj.Bool("has_cname_record"),
		HasMXRecordsPresent:           obj.Bool("has_mx_records_present"),
		IsValidDomain:                 obj.Bool("is_valid_domain"),
		IsApexDomain:                  obj.Bool("is_apex_domain"),
		ShouldBeARecord:               obj.Bool("should_be_a_record"),
		IsCNAMEToGitHubUserDomain:     obj.Bool("is_cname_to_github_user_domain"),
		IsCNAMEToPagesDotGitHubDotCom: obj.Bool("is_cname_to_pages_dot_github_dot_com"),
		IsCNAMEToFastly:               obj.Bool("is_cname_to_fastly"),
		IsPointedToGitHubPagesIP:      obj.Bool("is_pointed_to_github_pages_ip"),
		IsNonGitHubPagesIPPresent:     obj.Bool("is_non_github_pages_ip_present"),
		IsPagesDomain:                 obj.Bool("is_pages_domain"),
		IsServedByPages:               obj.Bool("is_served_by_pages"),
		IsValid:                       obj.Bool("is_valid"),
		RespondsToHTTPS:               obj.Bool("responds_to_https"),
		EnforcesHTTPS:                 obj.Bool("enforces_https"),
		IsHTTPSEligible:               obj.Bool("is_https_eligible"),
	}), nil
}

// Host returns the domain that was checked.
func (h *PagesDomainHealth) Host() string {
	return h.f.Host
}

// URI returns the URL that was probed.
func (h *PagesDomainHealth) URI() string {
	return h.f.URI
}

// Nameservers returns the nameserver provider, such as "default".
func (h *PagesDomainHealth) Nameservers() string {
	return h.f.Nameservers
}

// Reason returns why the domain is unhealthy, or nil.
func (h *PagesDomainHealth) Reason() *string {
	return h.f.Reason
}

// HTTPSError returns the HTTPS probe error, or nil.
func (h *PagesDomainHealth) HTTPSError() *string {
	return h.f.HTTPSError
}

// CAAError returns the CAA record error, or nil.
func (h *PagesDomainHealth) CAAError() *string {
	return h.f.CAAError
}

// DNSResolves reports the dns_resolves check.
func (h *PagesDomainHealth) DNSResolves() bool {
	return h.f.DNSResolves
}

// IsProxied reports the is_proxied check.
func (h *PagesDomainHealth) IsProxied() bool {
	return h.f.IsProxied
}

// IsCloudflareIP reports the is_cloudflare_ip check.
func (h *PagesDomainHealth) IsCloudflareIP() bool {
	return h.f.IsCloudflareIP
}

// IsFastlyIP reports the is_fastly_ip check.
func (h *PagesDomainHealth) IsFastlyIP() bool {
	return h.f.IsFastlyIP
}

// IsOldIPAddress reports the is_old_ip_address check.
func (h *PagesDomainHealth) IsOldIPAddress() bool {
	return h.f.IsOldIPAddress
}

// IsARecord reports the is_a_record check.
func (h *PagesDomainHealth) IsARecord() bool {
	return h.f.IsARecord
}

// HasCNAMERecord reports the has_cname_record check.
func (h *PagesDomainHealth) HasCNAMERecord() bool {
	return h.f.HasCNAMERecord
}

// HasMXRecordsPresent reports the has_mx_records_present check.
func (h *PagesDomainHealth) HasMXRecordsPresent() bool {
	return h.f.HasMXRecordsPresent
}

// IsValidDomain reports the is_valid_domain check.
func (h *PagesDomainHealth) IsValidDomain() bool {
	return h.f.IsValidDomain
}

// IsApexDomain reports the is_apex_domain check.
func (h *PagesDomainHealth) IsApexDomain() bool {
	return h.f.IsApexDomain
}

// ShouldBeARecord reports the should_be_a_record check.
func (h *PagesDomainHealth) ShouldBeARecord() bool {
	return h.f.ShouldBeARecord
}

// IsCNAMEToGitHubUserDomain reports the is_cname_to_github_user_domain check.
func (h *PagesDomainHealth) IsCNAMEToGitHubUserDomain() bool {
	return h.f.IsCNAMEToGitHubUserDomain
}

// IsCNAMEToPagesDotGitHubDotCom reports the is_cname_to_pages_dot_github_dot_com check.
func (h *PagesDomainHealth) IsCNAMEToPagesDotGitHubDotCom() bool {
	return h.f.IsCNAMEToPagesDotGitHubDotCom
}

// IsCNAMEToFastly reports the is_cname_to_fastly check.
func (h *PagesDomainHealth) IsCNAMEToFastly() bool {
	return h.f.IsCNAMEToFastly
}

// IsPointedToGitHubPagesIP reports the is_pointed_to_github_pages_ip check.
func (h *PagesDomainHealth) IsPointedToGitHubPagesIP() bool {
	return h.f.IsPointedToGitHubPagesIP
}

// IsNonGitHubPagesIPPresent reports the is_non_github_pages_ip_present check.
func (h *PagesDomainHealth) IsNonGitHubPagesIPPresent() bool {
	return h.f.IsNonGitHubPagesIPPresent
}

// IsPagesDomain reports the is_pages_domain check.
func (h *PagesDomainHealth) IsPagesDomain() bool {
	return h.f.IsPagesDomain
}

// IsServedByPages reports the is_served_by_pages check.
func (h *PagesDomainHealth) IsServedByPages() bool {
	return h.f.IsServedByPages
}

// IsValid reports the is_valid check.
func (h *PagesDomainHealth) IsValid() bool {
	return h.f.IsValid
}

// RespondsToHTTPS reports the responds_to_https check.
func (h *PagesDomainHealth) RespondsToHTTPS() bool {
	return h.f.RespondsToHTTPS
}

// EnforcesHTTPS reports the enforces_https check.
func (h *PagesDomainHealth) EnforcesHTTPS() bool {
	return h.f.EnforcesHTTPS
}

// IsHTTPSEligible reports the is_https_eligible check.
func (h *PagesDomainHealth) IsHTTPSEligible() bool {
	return h.f.IsHTTPSEligible
}
// PagesHealthCheckFields holds the attributes of a PagesHealthCheck.
type PagesHealthCheckFields struct {
	Domain    *PagesDomainHealth
	AltDomain *PagesDomainHealth
}

// PagesHealthCheck is the health of a Pages site's custom domain and of its
// www/apex alternate.
type PagesHealthCheck struct {
	f PagesHealthCheckFields
}

// NewPagesHealthCheck returns a PagesHealthCheck with the given attributes.
func NewPagesHealthCheck(f PagesHealthCheckFields) *PagesHealthCheck {
	return &PagesHealthCheck{f: f}
}

// DecodePagesHealthCheck builds a PagesHealthCheck from its JSON object.
func DecodePagesHealthCheck(obj field.Object) (*PagesHealthCheck, error) {
	d := newDecoder("PagesHealthCheck", obj)
	f := PagesHealthCheckFields{
		Domain:    readNested(d, "domain", DecodePagesDomainHealth),
		AltDomain: readNested(d, "alt_domain", DecodePagesDomainHealth),
	}
	if d.err != nil {
		return nil, d.err
	}
	return NewPagesHealthCheck(f), nil
}

// Domain returns the custom domain's health, or nil.
func (h *PagesHealthCheck) Domain() *PagesDomainHealth {
	return h.f.Domain
}

// AltDomain returns the alternate domain's health, or nil when there is none.
func (h *PagesHealthCheck) AltDomain() *PagesDomainHealth {
	return h.f.AltDomain
}
