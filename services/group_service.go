package services

import (
	"github.com/hgpnguyen/restaurant/entity"
	"github.com/hgpnguyen/restaurant/repository"
)

// GroupService manages the role-group rosters. Only managers reach these
// operations; the routes enforce that.
type GroupService struct {
	userRepo *repository.UserRepository
}

func NewGroupService(repo *repository.UserRepository) *GroupService {
	return &GroupService{userRepo: repo}
}

// AddMember looks the target up by username, creates the group on first use
// and adds the membership. Unknown usernames surface as record-not-found.
func (s *GroupService) AddMember(username, groupName string) (*entity.User, error) {
	user, err := s.userRepo.FindByUsername(username)
	if err != nil {
		return nil, err
	}

	group, err := s.userRepo.GetOrCreateGroup(groupName)
	if err != nil {
		return nil, err
	}

	if err := s.userRepo.AddToGroup(user, group); err != nil {
		return nil, err
	}
	return user, nil
}

func (s *GroupService) RemoveMember(userID uint, groupName string) error {
	user, err := s.userRepo.FindByID(userID)
	if err != nil {
		return err
	}

	group, err := s.userRepo.GetOrCreateGroup(groupName)
	if err != nil {
		return err
	}

	return s.userRepo.RemoveFromGroup(user, group)
}

func (s *GroupService) ListMembers(groupName string) ([]entity.User, error) {
	return s.userRepo.ListInGroup(groupName)
}
