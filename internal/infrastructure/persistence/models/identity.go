package models

import (
	"github.com/facturo/backend/internal/domain/identity"
	"github.com/google/uuid"
)

// UserModel is the persistence model for identity.User
type UserModel struct {
	BaseModel
	SubjectID string `gorm:"size:255;uniqueIndex"`
	Email     string `gorm:"size:255;index"`
	Name      string `gorm:"size:255"`
}

// TableName returns the table name for UserModel
func (UserModel) TableName() string {
	return "users"
}

// ToDomain converts UserModel to domain User
func (m *UserModel) ToDomain() *identity.User {
	return &identity.User{
		BaseEntity: m.BaseModel.ToDomain(),
		SubjectID:  m.SubjectID,
		Email:      m.Email,
		Name:       m.Name,
	}
}

// FromDomain populates UserModel from domain User
func (m *UserModel) FromDomain(u *identity.User) {
	m.FromDomainBaseEntity(u.BaseEntity)
	m.SubjectID = u.SubjectID
	m.Email = u.Email
	m.Name = u.Name
}

// TeamModel is the persistence model for identity.Team
type TeamModel struct {
	BaseModel
	Name                  string    `gorm:"size:200;not null"`
	OwnerID               uuid.UUID `gorm:"type:uuid;not null;index"`
	LogoRef               string    `gorm:"size:255"`
	ICE                   string    `gorm:"size:50"`
	IFNumber              string    `gorm:"size:50"`
	CNIE                  string    `gorm:"size:50"`
	ProfessionalTaxNumber string    `gorm:"size:50"`
	Address               string    `gorm:"size:500"`
	Phone                 string    `gorm:"size:50"`
	Email                 string    `gorm:"size:255"`
}

// TableName returns the table name for TeamModel
func (TeamModel) TableName() string {
	return "teams"
}

// ToDomain converts TeamModel to domain Team
func (m *TeamModel) ToDomain() *identity.Team {
	return &identity.Team{
		BaseEntity:            m.BaseModel.ToDomain(),
		Name:                  m.Name,
		OwnerID:               m.OwnerID,
		LogoRef:               m.LogoRef,
		ICE:                   m.ICE,
		IFNumber:              m.IFNumber,
		CNIE:                  m.CNIE,
		ProfessionalTaxNumber: m.ProfessionalTaxNumber,
		Address:               m.Address,
		Phone:                 m.Phone,
		Email:                 m.Email,
	}
}

// FromDomain populates TeamModel from domain Team
func (m *TeamModel) FromDomain(t *identity.Team) {
	m.FromDomainBaseEntity(t.BaseEntity)
	m.Name = t.Name
	m.OwnerID = t.OwnerID
	m.LogoRef = t.LogoRef
	m.ICE = t.ICE
	m.IFNumber = t.IFNumber
	m.CNIE = t.CNIE
	m.ProfessionalTaxNumber = t.ProfessionalTaxNumber
	m.Address = t.Address
	m.Phone = t.Phone
	m.Email = t.Email
}

// TeamMembershipModel is the persistence model for identity.TeamMembership
type TeamMembershipModel struct {
	BaseModel
	UserID uuid.UUID `gorm:"type:uuid;not null;uniqueIndex:idx_memberships_user_team"`
	TeamID uuid.UUID `gorm:"type:uuid;not null;uniqueIndex:idx_memberships_user_team"`
	Role   string    `gorm:"size:20;not null"`
}

// TableName returns the table name for TeamMembershipModel
func (TeamMembershipModel) TableName() string {
	return "team_memberships"
}

// ToDomain converts TeamMembershipModel to domain TeamMembership
func (m *TeamMembershipModel) ToDomain() *identity.TeamMembership {
	return &identity.TeamMembership{
		BaseEntity: m.BaseModel.ToDomain(),
		UserID:     m.UserID,
		TeamID:     m.TeamID,
		Role:       identity.MembershipRole(m.Role),
	}
}

// FromDomain populates TeamMembershipModel from domain TeamMembership
func (m *TeamMembershipModel) FromDomain(t *identity.TeamMembership) {
	m.FromDomainBaseEntity(t.BaseEntity)
	m.UserID = t.UserID
	m.TeamID = t.TeamID
	m.Role = string(t.Role)
}
