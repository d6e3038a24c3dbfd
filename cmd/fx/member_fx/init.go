package member_fx

import (
	"go.uber.org/fx"

	"roteiro/internal/infra"
	"roteiro/internal/repositories"
	"roteiro/internal/services"
)

var Module = fx.Provide(
	provideMemberRepo, provideMemberService)

func provideMemberRepo(store infra.BlobStore) repositories.MemberRepository {
	return repositories.NewMemberRepository(store)
}

func provideMemberService(repo repositories.MemberRepository) services.MemberServiceInterface {
	return services.NewMemberService(repo)
}
