package entity_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/hgpnguyen/restaurant/entity"
)

func TestRoleFromGroups(t *testing.T) {
	manager := entity.Group{Name: entity.GroupManager}
	crew := entity.Group{Name: entity.GroupDeliveryCrew}
	other := entity.Group{Name: "Kitchen"}

	tests := []struct {
		name    string
		isStaff bool
		groups  []entity.Group
		want    entity.Role
	}{
		{"no memberships is customer", false, nil, entity.RoleCustomer},
		{"unrelated group is customer", false, []entity.Group{other}, entity.RoleCustomer},
		{"manager group", false, []entity.Group{manager}, entity.RoleManager},
		{"delivery crew group", false, []entity.Group{crew}, entity.RoleDeliveryCrew},
		{"staff without groups", true, nil, entity.RoleManager},
		{"manager wins over crew", false, []entity.Group{crew, manager}, entity.RoleManager},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, entity.RoleFromGroups(tt.isStaff, tt.groups))
		})
	}
}
