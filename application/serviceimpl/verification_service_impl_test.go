package serviceimpl

import (
	"context"
	"errors"
	"strings"
	"testing"
	"time"

	"gorm.io/gorm"

	"shopcore/domain/models"
	"shopcore/domain/services"
)

type fakeVerificationRepo struct {
	records map[string]*models.EmailVerificationCode
}

func newFakeVerificationRepo() *fakeVerificationRepo {
	return &fakeVerificationRepo{records: make(map[string]*models.EmailVerificationCode)}
}

func (f *fakeVerificationRepo) Upsert(ctx context.Context, code *models.EmailVerificationCode) error {
	copy := *code
	f.records[code.Email] = &copy
	return nil
}

func (f *fakeVerificationRepo) GetByEmail(ctx context.Context, email string) (*models.EmailVerificationCode, error) {
	record, ok := f.records[email]
	if !ok {
		return nil, gorm.ErrRecordNotFound
	}
	copy := *record
	return &copy, nil
}

func (f *fakeVerificationRepo) MarkUsed(ctx context.Context, email string) error {
	record, ok := f.records[email]
	if !ok {
		return gorm.ErrRecordNotFound
	}
	record.IsUsed = true
	return nil
}

func (f *fakeVerificationRepo) Delete(ctx context.Context, email string) error {
	delete(f.records, email)
	return nil
}

func (f *fakeVerificationRepo) PurgeExpired(ctx context.Context, cutoff time.Time) (int64, error) {
	var deleted int64
	for email, record := range f.records {
		if record.CreatedAt.Before(cutoff) {
			delete(f.records, email)
			deleted++
		}
	}
	return deleted, nil
}

type fakeMailer struct {
	sent []string
	err  error
}

func (f *fakeMailer) Send(ctx context.Context, to, subject, body string) error {
	if f.err != nil {
		return f.err
	}
	f.sent = append(f.sent, to+": "+body)
	return nil
}

func newVerificationFixture(mailer *fakeMailer, now time.Time) (*VerificationServiceImpl, *fakeVerificationRepo) {
	repo := newFakeVerificationRepo()
	svc := &VerificationServiceImpl{
		verificationRepo: repo,
		mailer:           mailer,
		now:              func() time.Time { return now },
	}
	return svc, repo
}

func TestRequestCodeIssuesSixDigits(t *testing.T) {
	mailer := &fakeMailer{}
	now := time.Date(2026, 6, 15, 12, 0, 0, 0, time.UTC)
	svc, repo := newVerificationFixture(mailer, now)
	ctx := context.Background()

	if err := svc.RequestCode(ctx, "User@Example.com"); err != nil {
		t.Fatalf("RequestCode: %v", err)
	}

	// email ถูก normalize เป็น lowercase
	record, ok := repo.records["user@example.com"]
	if !ok {
		t.Fatal("record not stored under normalized email")
	}
	if len(record.Code) != 6 {
		t.Errorf("code length = %d, want 6", len(record.Code))
	}
	for _, ch := range record.Code {
		if ch < '0' || ch > '9' {
			t.Errorf("code %q contains non-digit", record.Code)
			break
		}
	}
	if len(mailer.sent) != 1 || !strings.Contains(mailer.sent[0], record.Code) {
		t.Error("mail should contain the issued code")
	}
}

func TestRequestCodeOverwritesPrevious(t *testing.T) {
	mailer := &fakeMailer{}
	now := time.Date(2026, 6, 15, 12, 0, 0, 0, time.UTC)
	svc, repo := newVerificationFixture(mailer, now)
	ctx := context.Background()

	if err := svc.RequestCode(ctx, "user@example.com"); err != nil {
		t.Fatalf("first request: %v", err)
	}
	first := repo.records["user@example.com"].Code

	if err := svc.VerifyCode(ctx, "user@example.com", first); err != nil {
		t.Fatalf("verify first: %v", err)
	}

	if err := svc.RequestCode(ctx, "user@example.com"); err != nil {
		t.Fatalf("second request: %v", err)
	}

	record := repo.records["user@example.com"]
	if record.IsUsed {
		t.Error("new code must reset is_used")
	}
	if err := svc.VerifyCode(ctx, "user@example.com", record.Code); err != nil {
		t.Errorf("verify new code: %v", err)
	}
}

func TestRequestCodeMailerFailure(t *testing.T) {
	mailErr := errors.New("smtp down")
	mailer := &fakeMailer{err: mailErr}
	now := time.Date(2026, 6, 15, 12, 0, 0, 0, time.UTC)
	svc, _ := newVerificationFixture(mailer, now)

	if err := svc.RequestCode(context.Background(), "user@example.com"); !errors.Is(err, mailErr) {
		t.Errorf("err = %v, want mailer error", err)
	}
}

func TestVerifyCode(t *testing.T) {
	issued := time.Date(2026, 6, 15, 12, 0, 0, 0, time.UTC)

	tests := []struct {
		name    string
		code    string
		at      time.Time
		wantErr error
	}{
		{name: "valid code", code: "123456", at: issued.Add(5 * time.Minute), wantErr: nil},
		{name: "wrong code", code: "654321", at: issued.Add(5 * time.Minute), wantErr: services.ErrCodeMismatch},
		{name: "expired at 11 minutes", code: "123456", at: issued.Add(11 * time.Minute), wantErr: services.ErrCodeExpired},
		{name: "boundary at exactly 10 minutes", code: "123456", at: issued.Add(10 * time.Minute), wantErr: nil},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			svc, repo := newVerificationFixture(&fakeMailer{}, tt.at)
			repo.records["user@example.com"] = &models.EmailVerificationCode{
				Email:     "user@example.com",
				Code:      "123456",
				CreatedAt: issued,
			}

			err := svc.VerifyCode(context.Background(), "user@example.com", tt.code)
			if !errors.Is(err, tt.wantErr) {
				t.Errorf("err = %v, want %v", err, tt.wantErr)
			}

			if tt.wantErr == nil && !repo.records["user@example.com"].IsUsed {
				t.Error("verified record should be marked used")
			}
		})
	}
}

func TestVerifyCodeUnknownEmail(t *testing.T) {
	svc, _ := newVerificationFixture(&fakeMailer{}, time.Now())
	if err := svc.VerifyCode(context.Background(), "nobody@example.com", "123456"); !errors.Is(err, services.ErrNotFound) {
		t.Errorf("err = %v, want ErrNotFound", err)
	}
}
