package db

import (
	"gorm.io/gorm"

	"pressroom/internal/model"
)

// seedPermission describes one catalog entry installed at startup.
type seedPermission struct {
	Name     string
	Category string
	Desc     string
}

var permissionCatalog = []seedPermission{
	{"View Articles", "articles", "Read articles including drafts"},
	{"Create Articles", "articles", "Create new articles"},
	{"Edit Articles", "articles", "Edit existing articles"},
	{"Delete Articles", "articles", "Delete articles"},
	{"Publish Articles", "articles", "Publish or unpublish articles"},
	{"View Carousel", "carousel", "View carousel slides"},
	{"Manage Carousel", "carousel", "Create, edit, reorder and delete slides"},
	{"Manage Categories", "categories", "Create, edit and delete categories"},
	{"View Messages", "messages", "Read contact messages"},
	{"Manage Messages", "messages", "Mark, export and delete contact messages"},
	{"View Users", "users", "List users"},
	{"Manage Users", "users", "Create, edit, deactivate and delete users"},
	{"Manage Roles", "roles", "Create, edit and delete roles"},
	{"View Notifications", "notifications", "Read notifications"},
	{"View Analytics", "analytics", "View dashboard analytics"},
	{"View Activity", "activity", "Read the activity log"},
}

// systemRoles are seeded once and protected from mutation through the API.
var systemRoles = []model.Role{
	{
		Name:        "Admin",
		Description: "Full access to every resource",
		Permissions: model.StringList{"*"},
		IsSystem:    true,
	},
	{
		Name:        "Editor",
		Description: "Manages site content",
		Permissions: model.StringList{
			"view_articles", "create_articles", "edit_articles", "publish_articles",
			"view_carousel", "manage_carousel", "manage_categories",
			"view_messages", "view_notifications", "view_analytics",
		},
		IsSystem: true,
	},
	{
		Name:        "Viewer",
		Description: "Read-only dashboard access",
		Permissions: model.StringList{
			"view_articles", "view_carousel", "view_notifications",
		},
		IsSystem: true,
	},
}

// Seed installs the permission catalog and the three system roles. Existing
// rows are left untouched so operator edits to descriptions survive restarts.
func Seed(db *gorm.DB) error {
	for _, p := range permissionCatalog {
		perm := model.Permission{
			Name:        p.Name,
			Slug:        model.Slugify(p.Name),
			Category:    p.Category,
			Description: p.Desc,
		}
		if err := db.Where(model.Permission{Slug: perm.Slug}).
			FirstOrCreate(&perm).Error; err != nil {
			return err
		}
	}

	for _, r := range systemRoles {
		role := r
		role.Slug = model.Slugify(role.Name)
		if err := db.Where(model.Role{Slug: role.Slug}).
			FirstOrCreate(&role).Error; err != nil {
			return err
		}
	}
	return nil
}
