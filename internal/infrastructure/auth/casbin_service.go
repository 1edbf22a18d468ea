package auth

import (
	"fmt"

	"github.com/casbin/casbin/v2"
	"github.com/casbin/casbin/v2/model"

	"github.com/ChamithuRuberu/fitpro/domain"
)

const rbacModel = `
[request_definition]
r = sub, obj, act

[policy_definition]
p = sub, obj, act

[policy_effect]
e = some(where (p.eft == allow))

[matchers]
m = r.sub == p.sub && keyMatch2(r.obj, p.obj) && regexMatch(r.act, p.act)
`

// CasbinService implements domain.RoleEnforcer. Dashboard routes are
// role-scoped: policies are static and seeded in memory, there is no policy
// storage in this layer.
type CasbinService struct{ E *casbin.Enforcer }

// NewCasbinService builds the enforcer and seeds the role/route policies.
func NewCasbinService() (*CasbinService, error) {
	m, err := model.NewModelFromString(rbacModel)
	if err != nil {
		return nil, fmt.Errorf("failed to parse rbac model: %w", err)
	}
	e, err := casbin.NewEnforcer(m)
	if err != nil {
		return nil, fmt.Errorf("failed to build enforcer: %w", err)
	}

	policies := [][]string{
		{domain.RoleUser, "/dashboard/client", "GET"},
		{domain.RoleTrainer, "/dashboard/trainer", "GET"},
		{domain.RoleGymAdmin, "/dashboard/gym-admin", "GET"},
		{domain.RoleSuperAdmin, "/dashboard/super-admin", "GET"},
		{domain.RoleSuperAdmin, "/dashboard/gym-admin", "GET"},
	}
	for _, p := range policies {
		if _, err := e.AddPolicy(p[0], p[1], p[2]); err != nil {
			return nil, fmt.Errorf("failed to seed policy %v: %w", p, err)
		}
	}
	return &CasbinService{E: e}, nil
}

var _ domain.RoleEnforcer = (*CasbinService)(nil)

// Allowed implements domain.RoleEnforcer.
func (s *CasbinService) Allowed(role, path, method string) (bool, error) {
	return s.E.Enforce(role, path, method)
}
