package http

import (
	"net/http"

	"github.com/boardhive/jobboard/models"
)

// routeRegistry is the hand-maintained API reference served at the root of
// the versioned prefix. Keep it in sync with Init when routes change.
var routeRegistry = []models.RouteInfo{
	{Path: "/api/v1/", Methods: []string{http.MethodGet}, Description: "API reference"},
	{Path: "/api/v1/logout", Methods: []string{http.MethodDelete}, Description: "Clear the session cookie"},
	{Path: "/api/v1/files/{key}", Methods: []string{http.MethodGet}, Description: "Download a stored attachment"},

	{Path: "/api/v1/users/register", Methods: []string{http.MethodPost}, Description: "Register a user account"},
	{Path: "/api/v1/users/register/{accountID}", Methods: []string{http.MethodGet}, Description: "Confirm a user email address"},
	{Path: "/api/v1/users/login", Methods: []string{http.MethodPost}, Description: "Sign in as a user"},
	{Path: "/api/v1/users/session", Methods: []string{http.MethodGet}, Description: "Resume the user session"},
	{Path: "/api/v1/users", Methods: []string{http.MethodPatch, http.MethodDelete}, Description: "Update or delete the calling user account"},

	{Path: "/api/v1/companies/register", Methods: []string{http.MethodPost}, Description: "Register a company account"},
	{Path: "/api/v1/companies/register/{accountID}", Methods: []string{http.MethodGet}, Description: "Confirm a company email address"},
	{Path: "/api/v1/companies/login", Methods: []string{http.MethodPost}, Description: "Sign in as a company"},
	{Path: "/api/v1/companies/session", Methods: []string{http.MethodGet}, Description: "Resume the company session"},
	{Path: "/api/v1/companies", Methods: []string{http.MethodPatch, http.MethodDelete}, Description: "Update or delete the calling company account"},

	{Path: "/api/v1/listings", Methods: []string{http.MethodGet}, Description: "Browse public listings with filters and pagination"},
	{Path: "/api/v1/listings", Methods: []string{http.MethodPost}, Description: "Create a listing (company session required)"},
	{Path: "/api/v1/listings/own", Methods: []string{http.MethodGet}, Description: "List the calling company's listings"},
	{Path: "/api/v1/listings/{listingID}", Methods: []string{http.MethodPatch, http.MethodDelete}, Description: "Update or delete an owned listing"},

	{Path: "/api/v1/admin/login", Methods: []string{http.MethodPost}, Description: "Sign in as an administrator"},
	{Path: "/api/v1/admin/session", Methods: []string{http.MethodGet}, Description: "Resume the administrator session"},
	{Path: "/api/v1/admin/users", Methods: []string{http.MethodGet}, Description: "List user accounts with filters and pagination"},
	{Path: "/api/v1/admin/users/{accountID}", Methods: []string{http.MethodGet, http.MethodPatch, http.MethodDelete}, Description: "Fetch, update or delete a user account"},
	{Path: "/api/v1/admin/companies", Methods: []string{http.MethodGet}, Description: "List company accounts with filters and pagination"},
	{Path: "/api/v1/admin/companies/{accountID}", Methods: []string{http.MethodGet, http.MethodPatch, http.MethodDelete}, Description: "Fetch, update or delete a company account"},
	{Path: "/api/v1/admin/listings/{listingID}", Methods: []string{http.MethodPatch, http.MethodDelete}, Description: "Moderate any listing"},
}

// docs serves the API reference document.
func (h *Handler) docs(w http.ResponseWriter, r *http.Request) {
	h.writeSuccess(w, r, http.StatusOK, "API reference", models.APIDocs{
		Name:    "jobboard",
		Version: h.version,
		Routes:  routeRegistry,
	})
}
