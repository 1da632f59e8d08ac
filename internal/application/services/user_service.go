package services

import (
	"context"
	"fmt"
	"log"
	"time"

	"github.com/google/uuid"

	"demcare-service/internal/application/command"
	"demcare-service/internal/application/interfaces"
	"demcare-service/internal/application/mapper"
	"demcare-service/internal/application/query"
	"demcare-service/internal/domain"
	"demcare-service/internal/domain/entities"
	"demcare-service/internal/domain/repositories"
	"demcare-service/internal/infrastructure"
)

const tokenCacheTTL = 24 * time.Hour

type UserService struct {
	userRepo   repositories.UserRepository
	otpRepo    repositories.OtpRepository
	otpService *infrastructure.OTPService
	jwtService *infrastructure.JWTService
	notifier   infrastructure.Notifier
	redis      infrastructure.TokenCache
	otpExpiry  time.Duration
	tokenCap   int
}

func NewUserService(
	userRepo repositories.UserRepository,
	otpRepo repositories.OtpRepository,
	otpService *infrastructure.OTPService,
	jwtService *infrastructure.JWTService,
	notifier infrastructure.Notifier,
	redis infrastructure.TokenCache,
	otpExpiry time.Duration,
	tokenCap int,
) interfaces.UserService {
	return &UserService{
		userRepo:   userRepo,
		otpRepo:    otpRepo,
		otpService: otpService,
		jwtService: jwtService,
		notifier:   notifier,
		redis:      redis,
		otpExpiry:  otpExpiry,
		tokenCap:   tokenCap,
	}
}

func (s *UserService) Signup(ctx context.Context, createCommand *command.CreateUserCommand) (*command.CreateUserCommandResult, error) {
	// Check if the email is already registered
	existingUser, err := s.userRepo.FindByEmail(ctx, createCommand.Email)
	if err != nil {
		return nil, err
	}
	if existingUser != nil {
		return nil, domain.ErrEmailRegistered
	}

	newUser := entities.NewUser(
		createCommand.Name,
		createCommand.Age,
		entities.Gender(createCommand.Gender),
		createCommand.Email,
		createCommand.Contact,
	)
	newUser.PermanentLocation = createCommand.PermanentLocation
	validatedUser, err := entities.NewValidatedUser(newUser)
	if err != nil {
		return nil, domain.NewValidationError(err.Error())
	}

	createdUser, err := s.userRepo.Create(ctx, validatedUser)
	if err != nil {
		return nil, err
	}

	record, err := s.issueOTP(ctx, createdUser.Email, "OTP for Registration")
	if err != nil {
		return nil, err
	}

	return &command.CreateUserCommandResult{
		Message: "otp sent",
		OtpId:   record.Id.String(),
	}, nil
}

func (s *UserService) Login(ctx context.Context, loginCommand *command.LoginUserCommand) (*command.LoginUserCommandResult, error) {
	if loginCommand.Email == "" {
		return nil, domain.NewValidationError("Enter valid email")
	}

	user, err := s.userRepo.FindByEmail(ctx, loginCommand.Email)
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, domain.ErrUserNotFound
	}

	record, err := s.issueOTP(ctx, user.Email, "OTP for Login")
	if err != nil {
		return nil, err
	}

	return &command.LoginUserCommandResult{
		Message: "otp sent",
		OtpId:   record.Id.String(),
	}, nil
}

// issueOTP generates a code, dispatches it by mail and persists the record.
// The record is only persisted once the mail provider has accepted the
// message, so a reported otpId always refers to a dispatched code.
func (s *UserService) issueOTP(ctx context.Context, email, subject string) (*entities.OtpRecord, error) {
	code := s.otpService.GenerateCode()

	if err := s.notifier.Send(ctx, email, subject, fmt.Sprintf("Your OTP is: %s", code)); err != nil {
		log.Println("Failed to send OTP email:", err)
		return nil, domain.ErrMailDelivery
	}

	record, err := s.otpRepo.Create(ctx, entities.NewOtpRecord(email, code, s.otpExpiry))
	if err != nil {
		return nil, err
	}

	return record, nil
}

func (s *UserService) VerifyOTP(ctx context.Context, verifyCommand *command.VerifyOTPCommand) (*command.VerifyOTPCommandResult, error) {
	recordID, err := uuid.Parse(verifyCommand.OtpId)
	if err != nil {
		return nil, domain.ErrOtpNotFound
	}

	record, err := s.otpRepo.FindById(ctx, recordID)
	if err != nil {
		return nil, err
	}
	if record == nil {
		return nil, domain.ErrOtpNotFound
	}

	// Expiry is checked against the persisted timestamp, so the validity
	// window holds across process restarts.
	if !record.Active || record.Expired(time.Now()) {
		return nil, domain.ErrOtpExpired
	}
	if !s.otpService.Matches(record.Code, verifyCommand.OtpEntered) {
		return nil, domain.ErrOtpMismatch
	}

	user, err := s.userRepo.FindByEmail(ctx, record.Email)
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, domain.ErrUserNotFound
	}

	if err := s.userRepo.MarkVerified(ctx, user.Id); err != nil {
		return nil, err
	}

	token, err := s.jwtService.GenerateToken(user.Id.String())
	if err != nil {
		return nil, err
	}

	evicted, err := s.userRepo.AppendToken(ctx, user.Id, token, s.tokenCap)
	if err != nil {
		return nil, err
	}

	if s.redis != nil {
		// Evicted tokens leave the cache with the list, so a stale cache
		// entry cannot outlive its list membership.
		for _, stale := range evicted {
			if err := s.redis.DeleteToken(ctx, stale); err != nil {
				log.Println("Failed to purge evicted session token from cache:", err)
			}
		}
		if err := s.redis.SetToken(ctx, token, user.Id.String(), tokenCacheTTL); err != nil {
			log.Println("Failed to cache session token:", err)
		}
	}

	verifiedUser, err := s.userRepo.FindById(ctx, user.Id)
	if err != nil {
		return nil, err
	}

	return &command.VerifyOTPCommandResult{
		User:  mapper.NewUserResultFromEntity(verifiedUser),
		Token: token,
	}, nil
}

func (s *UserService) UpdateEmergencyContacts(ctx context.Context, userID uuid.UUID, updateCommand *command.UpdateEmergencyContactsCommand) (*command.UpdateEmergencyContactsCommandResult, error) {
	if len(updateCommand.EmergencyContacts) == 0 {
		return nil, domain.NewValidationError("Invalid emergency contacts data")
	}
	for _, contact := range updateCommand.EmergencyContacts {
		if contact.ContactName == "" || contact.ContactNumber == "" {
			return nil, domain.NewValidationError("Each contact must have a name and number")
		}
	}

	user, err := s.userRepo.FindById(ctx, userID)
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, domain.ErrUserNotFound
	}

	contacts := make([]entities.EmergencyContact, 0, len(updateCommand.EmergencyContacts))
	for _, contact := range updateCommand.EmergencyContacts {
		contacts = append(contacts, entities.EmergencyContact{
			ContactName:   contact.ContactName,
			ContactNumber: contact.ContactNumber,
			ContactEmail:  contact.ContactEmail,
		})
	}

	if err := s.userRepo.ReplaceEmergencyContacts(ctx, userID, contacts); err != nil {
		return nil, err
	}

	updatedUser, err := s.userRepo.FindById(ctx, userID)
	if err != nil {
		return nil, err
	}

	return &command.UpdateEmergencyContactsCommandResult{
		User: mapper.NewUserResultFromEntity(updatedUser),
	}, nil
}

func (s *UserService) GetLocation(ctx context.Context, userID uuid.UUID) (*query.UserLocationResult, error) {
	user, err := s.userRepo.FindById(ctx, userID)
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, domain.ErrUserNotFound
	}

	return &query.UserLocationResult{PermanentLocation: user.PermanentLocation}, nil
}
