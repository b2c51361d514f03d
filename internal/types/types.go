// Copyright 2026 Rentdesk Ltd
// SPDX-License-Identifier: AGPL-3.0

package types

type Person struct {
	ID         int64  `json:"id" db:"id_persona"`
	NationalID string `json:"dni" db:"dni"`
	LastName   string `json:"apellido" db:"apellido"`
	FirstName  string `json:"nombre" db:"nombre"`
	Phone      string `json:"telefono" db:"telefono"`
	Email      string `json:"email" db:"email"`
	Active     bool   `json:"active" db:"estado"`
}

// FullName renders the display name the listings sort by.
func (p *Person) FullName() string {
	return p.LastName + ", " + p.FirstName
}

// Membership links a person to one role table. It carries nothing else,
// which is why the link is immutable once created.
type Membership struct {
	ID       int64 `json:"id"`
	PersonID int64 `json:"person_id"`
	Active   bool  `json:"active"`
}

// Role describes one of the three role tables. The storage layer is generic
// over this descriptor so the grant/revoke semantics exist exactly once.
type Role struct {
	// Name is the URL/API segment, e.g. "owner".
	Name string
	// Label is the display label used in aggregated role strings.
	Label string
	// Table is the membership table name.
	Table string
	// IDColumn is the membership surrogate key column.
	IDColumn string
}

var (
	RoleOwner    = Role{Name: "owner", Label: "Owner", Table: "propietarios", IDColumn: "id_propietario"}
	RoleTenant   = Role{Name: "tenant", Label: "Tenant", Table: "inquilinos", IDColumn: "id_inquilino"}
	RoleEmployee = Role{Name: "employee", Label: "Employee", Table: "empleados", IDColumn: "id_empleado"}
)

// Roles lists the role descriptors in the fixed presentation order.
var Roles = []Role{RoleOwner, RoleTenant, RoleEmployee}

// PersonWithRoles is a row of the person listing, person fields plus the
// computed active-membership flag for each role.
type PersonWithRoles struct {
	Person
	IsOwner    bool `json:"is_owner"`
	IsTenant   bool `json:"is_tenant"`
	IsEmployee bool `json:"is_employee"`
}
