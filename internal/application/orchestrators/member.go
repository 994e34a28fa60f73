package orchestrators

import (
	"context"
	"log/slog"
	"time"

	"clubsite/internal/domain/member"
)

// MemberStoreForWrite defines the store interface needed by the member orchestrators.
type MemberStoreForWrite interface {
	Create(ctx context.Context, m member.Member) (int64, error)
	GetByID(ctx context.Context, id int64) (member.Member, error)
	Delete(ctx context.Context, id int64) error
}

// AddMemberInput carries input for the add-member orchestrator.
type AddMemberInput struct {
	Name  string
	Role  string
	Bio   string
	Photo *FileUpload
}

// AddMemberDeps holds dependencies for AddMember.
type AddMemberDeps struct {
	MemberStore MemberStoreForWrite
	Media       MediaStore
	Now         func() time.Time
}

// ExecuteAddMember validates and persists a new member with an optional photo.
// POST: On success the member row exists and any photo file is on disk
func ExecuteAddMember(ctx context.Context, input AddMemberInput, deps AddMemberDeps) (int64, error) {
	m := member.Member{
		Name:     input.Name,
		Role:     input.Role,
		Bio:      input.Bio,
		JoinedAt: deps.Now(),
	}
	if err := m.Validate(); err != nil {
		return 0, err
	}

	if input.Photo != nil {
		stored, err := deps.Media.Save(input.Photo.Filename, input.Photo.Reader)
		if err != nil {
			return 0, err
		}
		m.Photo = stored
	}

	id, err := deps.MemberStore.Create(ctx, m)
	if err != nil {
		removeStoredFile(deps.Media, m.Photo)
		return 0, err
	}

	slog.Info("member_added", "id", id, "name", m.Name)
	return id, nil
}

// RemoveMemberInput carries input for the remove-member orchestrator.
type RemoveMemberInput struct {
	ID int64
}

// RemoveMemberDeps holds dependencies for RemoveMember.
type RemoveMemberDeps struct {
	MemberStore MemberStoreForWrite
	Media       MediaStore
}

// ExecuteRemoveMember deletes a member and their photo file.
// POST: The row is gone; photo removal is best effort
func ExecuteRemoveMember(ctx context.Context, input RemoveMemberInput, deps RemoveMemberDeps) error {
	existing, err := deps.MemberStore.GetByID(ctx, input.ID)
	if err != nil {
		return err
	}
	if err := deps.MemberStore.Delete(ctx, input.ID); err != nil {
		return err
	}
	removeStoredFile(deps.Media, existing.Photo)
	slog.Info("member_removed", "id", input.ID, "name", existing.Name)
	return nil
}
