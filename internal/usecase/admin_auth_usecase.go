package usecase

import (
	"context"
	"net/http"
	"time"

	"golang.org/x/crypto/bcrypt"
)

// JWTを発行する約束
type AccessTokenIssuer interface {
	Issue(username string, role string, now time.Time) (token string, expiresAt time.Time, err error)
}

// 入力パスワードと保存したハッシュを比べる約束
type PasswordVerifier interface {
	Verify(plain string, hashed string) bool
}

// 平文パスワードからハッシュへ。
type PasswordHasher interface {
	Hash(plain string) (string, error)
}

type BcryptPasswordHasher struct {
	cost int
}

func NewBcryptPasswordHasher(cost int) *BcryptPasswordHasher {
	if cost <= 0 {
		cost = bcrypt.DefaultCost
	}
	return &BcryptPasswordHasher{cost}
}

// bcryptでハッシュ化
func (h *BcryptPasswordHasher) Hash(plain string) (string, error) {
	hashedBytes, err := bcrypt.GenerateFromPassword([]byte(plain), h.cost)
	if err != nil {
		return "", err
	}
	return string(hashedBytes), nil
}

// bcryptハッシュと平文を比較
type BcryptPasswordVerifier struct{}

// DI
func NewBcryptPasswordVerifier() *BcryptPasswordVerifier {
	return &BcryptPasswordVerifier{}
}

// 平文(plain)をbcryptで比較
func (v *BcryptPasswordVerifier) Verify(plain string, hashed string) bool {
	err := bcrypt.CompareHashAndPassword([]byte(hashed), []byte(plain))
	return err == nil
}

// AdminAuthUsecase は固定1組の管理者クレデンシャルだけを照合する。
// ユーザーテーブルは無い（デモ仕様）。
type AdminAuthUsecase struct {
	username     string
	passwordHash string
	verifier     PasswordVerifier
	issuer       AccessTokenIssuer
	clock        Clock
}

func NewAdminAuthUsecase(
	username string,
	passwordHash string,
	verifier PasswordVerifier,
	issuer AccessTokenIssuer,
	clock Clock,
) *AdminAuthUsecase {
	return &AdminAuthUsecase{
		username:     username,
		passwordHash: passwordHash,
		verifier:     verifier,
		issuer:       issuer,
		clock:        clock,
	}
}

type AdminLoginInput struct {
	Username string
	Password string
}

type AdminLoginOutput struct {
	AccessToken string `json:"access_token"`
	ExpiresIn   int    `json:"expires_in"`
}

// Login は照合に成功したらADMINロールのアクセストークンを返す。
// 失敗理由は区別せず同じメッセージを返す。
func (u *AdminAuthUsecase) Login(ctx context.Context, in AdminLoginInput) (AdminLoginOutput, error) {
	if in.Username != u.username || !u.verifier.Verify(in.Password, u.passwordHash) {
		return AdminLoginOutput{}, NewHTTPError(http.StatusUnauthorized, "invalid credentials")
	}

	now := u.clock.Now()
	token, expiresAt, err := u.issuer.Issue(u.username, "ADMIN", now)
	if err != nil {
		return AdminLoginOutput{}, NewHTTPError(http.StatusInternalServerError, "token error")
	}

	return AdminLoginOutput{
		AccessToken: token,
		ExpiresIn:   int(expiresAt.Sub(now).Seconds()),
	}, nil
}
