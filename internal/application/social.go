package application

import (
	"errors"
	"fmt"

	"github.com/linskybing/litreview-go/internal/domain/social"
	"github.com/linskybing/litreview-go/internal/domain/user"
	"github.com/linskybing/litreview-go/internal/repository"
	"gorm.io/gorm"
)

type SocialService struct {
	Repos *repository.Repos
}

func NewSocialService(repos *repository.Repos) *SocialService {
	return &SocialService{
		Repos: repos,
	}
}

// RequestFollow checks the follow rules in order and stores the edge when
// none of them rejects it.
func (s *SocialService) RequestFollow(actorID uint, targetUsername string) (social.Follow, error) {
	target, err := s.Repos.User.GetUserByUsername(targetUsername)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return social.Follow{}, social.ErrUserNotFound
		}
		return social.Follow{}, err
	}

	if target.UID == actorID {
		return social.Follow{}, social.ErrSelfFollowDenied
	}

	blocked, err := s.Repos.Block.BlockExists(actorID, target.UID)
	if err != nil {
		return social.Follow{}, err
	}
	if blocked {
		return social.Follow{}, social.ErrTargetBlockedByActor
	}

	blockedBy, err := s.Repos.Block.BlockExists(target.UID, actorID)
	if err != nil {
		return social.Follow{}, err
	}
	if blockedBy {
		return social.Follow{}, social.ErrActorBlockedByTarget
	}

	following, err := s.Repos.Follow.FollowExists(actorID, target.UID)
	if err != nil {
		return social.Follow{}, err
	}
	if following {
		return social.Follow{}, social.ErrAlreadyFollowing
	}

	f := social.Follow{
		FollowerID: actorID,
		FollowedID: target.UID,
	}
	created, err := s.Repos.Follow.CreateFollow(&f)
	if err != nil {
		return social.Follow{}, fmt.Errorf("create follow: %w", err)
	}
	if !created {
		return social.Follow{}, social.ErrAlreadyFollowing
	}
	return f, nil
}

func (s *SocialService) Unfollow(actorID, targetID uint) error {
	return s.Repos.Follow.DeleteFollow(actorID, targetID)
}

// Block records actor->target and drops follow edges in both directions.
// Blocking oneself does nothing.
func (s *SocialService) Block(actorID, targetID uint) error {
	if actorID == targetID {
		return nil
	}
	if _, err := s.Repos.User.GetUserByID(targetID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return social.ErrUserNotFound
		}
		return err
	}

	return s.Repos.ExecTx(func(tx *repository.Repos) error {
		b := social.Block{
			BlockerID: actorID,
			BlockedID: targetID,
		}
		if err := tx.Block.GetOrCreateBlock(&b); err != nil {
			return fmt.Errorf("create block: %w", err)
		}
		if err := tx.Follow.DeleteFollow(actorID, targetID); err != nil {
			return err
		}
		return tx.Follow.DeleteFollow(targetID, actorID)
	})
}

// Unblock removes actor->target. Follows dropped by the block stay gone.
func (s *SocialService) Unblock(actorID, targetID uint) error {
	return s.Repos.Block.DeleteBlock(actorID, targetID)
}

func (s *SocialService) ListFollowing(actorID uint) ([]user.User, error) {
	ids, err := s.Repos.Follow.ListFollowedIDs(actorID)
	if err != nil {
		return nil, err
	}
	return s.Repos.User.ListUsersByIDs(ids)
}

func (s *SocialService) ListFollowers(actorID uint) ([]user.User, error) {
	ids, err := s.Repos.Follow.ListFollowerIDs(actorID)
	if err != nil {
		return nil, err
	}
	return s.Repos.User.ListUsersByIDs(ids)
}

func (s *SocialService) ListBlocked(actorID uint) ([]user.User, error) {
	ids, err := s.Repos.Block.ListBlockedIDs(actorID)
	if err != nil {
		return nil, err
	}
	return s.Repos.User.ListUsersByIDs(ids)
}
