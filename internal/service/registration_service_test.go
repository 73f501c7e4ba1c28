package service

import (
	"context"
	"errors"
	"math/big"
	"strings"
	"testing"
	"time"

	"chatmint-studio/internal/core/domain"
	"chatmint-studio/internal/core/ports"
	"chatmint-studio/internal/core/ports/mocks"
	"chatmint-studio/pkg/apperror"

	"github.com/ethereum/go-ethereum/common"
	"github.com/ethereum/go-ethereum/crypto"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

const (
	testImageURI    = "https://gateway.pinata.cloud/ipfs/QmImage"
	testMetadataURI = "https://gateway.pinata.cloud/ipfs/QmMeta"
	testExplorerURL = "https://aeneid.explorer.storyprotocol.xyz/tx/"
)

var (
	testSPGContract = common.HexToAddress("0xc32A8a0FF3beDDDa58393d022aF433e78739FAbc")
	testSigner      = common.HexToAddress("0x9999999999999999999999999999999999999999")
	oneMilliEther   = big.NewInt(1_000_000_000_000_000)
)

type registrationTestDeps struct {
	svc       *RegistrationServiceImpl
	pinner    *mocks.MockContentPinner
	balances  *mocks.MockBalanceChecker
	registrar *mocks.MockChainRegistrar
	gallery   *mocks.MockGalleryRepository
	drafts    *mocks.MockDraftStore
	owner     domain.WalletAddress
}

func setupRegistrationService(t *testing.T) *registrationTestDeps {
	ctrl := gomock.NewController(t)
	d := &registrationTestDeps{
		pinner:    mocks.NewMockContentPinner(ctrl),
		balances:  mocks.NewMockBalanceChecker(ctrl),
		registrar: mocks.NewMockChainRegistrar(ctrl),
		gallery:   mocks.NewMockGalleryRepository(ctrl),
		drafts:    mocks.NewMockDraftStore(ctrl),
		owner:     mustAddr(t, primaryAddr),
	}
	d.svc = NewRegistrationService(d.pinner, d.balances, d.registrar, d.gallery, d.drafts, RegistrationConfig{
		SPGNFTContract: testSPGContract,
		MinBalanceWei:  oneMilliEther,
		ExplorerURL:    testExplorerURL,
	}, newTestLogger())
	d.svc.now = func() time.Time { return time.UnixMilli(1_700_000_000_000) }
	return d
}

func (d *registrationTestDeps) request() ports.RegisterAssetRequest {
	return ports.RegisterAssetRequest{Owner: d.owner, Metadata: sampleMetadata()}
}

func (d *registrationTestDeps) expectUploads() {
	d.pinner.EXPECT().PinFile(gomock.Any(), "koi.png", gomock.Any()).Return(testImageURI, nil)
	d.pinner.EXPECT().PinJSON(gomock.Any(), "Neon Koi", gomock.Any()).Return(testMetadataURI, nil)
}

func (d *registrationTestDeps) expectFunded() {
	d.registrar.EXPECT().Signer().Return(testSigner).AnyTimes()
	d.balances.EXPECT().BalanceAt(gomock.Any(), testSigner).Return(big.NewInt(5_000_000_000_000_000), nil)
}

func (d *registrationTestDeps) draftWith(t *testing.T, shares map[string]domain.BasisPoints) *domain.OwnershipDraft {
	return &domain.OwnershipDraft{Allocation: allocationWith(t, shares)}
}

func TestRegister_SoleOwner(t *testing.T) {
	d := setupRegistrationService(t)
	ctx := context.Background()

	d.drafts.EXPECT().Get(gomock.Any(), d.owner).Return(nil, nil)
	d.pinner.EXPECT().PinFile(gomock.Any(), "koi.png", sampleMetadata().Image).Return(testImageURI, nil)
	d.pinner.EXPECT().PinJSON(gomock.Any(), "Neon Koi", gomock.Any()).DoAndReturn(
		func(_ context.Context, _ string, doc any) (string, error) {
			md, ok := doc.(domain.MetadataDocument)
			require.True(t, ok)
			assert.Equal(t, testImageURI, md.Image)
			assert.Equal(t, "100.00", md.SharePercent)
			assert.Nil(t, md.OwnershipData)
			return testMetadataURI, nil
		},
	)
	d.expectFunded()
	d.registrar.EXPECT().MintAndRegisterIP(gomock.Any(), gomock.Any()).DoAndReturn(
		func(_ context.Context, req domain.MintAndRegisterRequest) (*domain.RegistrationReceipt, error) {
			hash := crypto.Keccak256Hash([]byte(testMetadataURI))
			assert.Equal(t, testSPGContract, req.SPGNFTContract)
			assert.Equal(t, d.owner.Common(), req.Recipient)
			assert.Equal(t, testMetadataURI, req.Metadata.IPMetadataURI)
			assert.Equal(t, testMetadataURI, req.Metadata.NFTMetadataURI)
			assert.Equal(t, hash, req.Metadata.IPMetadataHash)
			assert.Equal(t, hash, req.Metadata.NFTMetadataHash)
			assert.True(t, req.AllowDuplicates)
			return &domain.RegistrationReceipt{AssetID: validAssetID, TransactionHash: validTxHash}, nil
		},
	)
	d.gallery.EXPECT().Append(gomock.Any(), d.owner, gomock.Any()).DoAndReturn(
		func(_ context.Context, _ domain.WalletAddress, rec domain.AssetRecord) error {
			assert.Equal(t, int64(1_700_000_000_000), rec.ID)
			assert.Nil(t, rec.Ownership)
			return nil
		},
	)

	result, err := d.svc.Register(ctx, d.request())
	require.NoError(t, err)
	assert.Equal(t, validAssetID, result.Record.AssetID)
	assert.Equal(t, validTxHash, result.Record.TransactionHash)
	assert.Equal(t, testImageURI, result.ImageURI)
	assert.Equal(t, testMetadataURI, result.MetadataURI)
	assert.Equal(t, testExplorerURL+validTxHash, result.ExplorerURL)
	assert.Equal(t, "100.00", result.Record.PrimaryOwnerSharePercent)
}

func TestRegister_CoOwnersRequireAcknowledgement(t *testing.T) {
	d := setupRegistrationService(t)

	d.drafts.EXPECT().Get(gomock.Any(), d.owner).Return(d.draftWith(t, map[string]domain.BasisPoints{coOwnerB: 3000}), nil)

	_, err := d.svc.Register(context.Background(), d.request())
	assertAppError(t, err, "VAL_001")
}

func TestRegister_WithCoOwners(t *testing.T) {
	d := setupRegistrationService(t)
	draft := d.draftWith(t, map[string]domain.BasisPoints{coOwnerB: 3000, coOwnerC: 2550})

	d.drafts.EXPECT().Get(gomock.Any(), d.owner).Return(draft, nil).Times(2)
	d.pinner.EXPECT().PinFile(gomock.Any(), gomock.Any(), gomock.Any()).Return(testImageURI, nil)
	d.pinner.EXPECT().PinJSON(gomock.Any(), gomock.Any(), gomock.Any()).DoAndReturn(
		func(_ context.Context, _ string, doc any) (string, error) {
			md := doc.(domain.MetadataDocument)
			assert.Equal(t, "44.50", md.SharePercent)
			require.NotNil(t, md.OwnershipData)
			assert.Equal(t, 5550, md.OwnershipData.TotalOwnershipBasisPoints)
			return testMetadataURI, nil
		},
	)
	d.expectFunded()
	d.registrar.EXPECT().MintAndRegisterIP(gomock.Any(), gomock.Any()).
		Return(&domain.RegistrationReceipt{AssetID: validAssetID, TransactionHash: validTxHash}, nil)
	d.gallery.EXPECT().Append(gomock.Any(), d.owner, gomock.Any()).Return(nil)
	d.drafts.EXPECT().Delete(gomock.Any(), d.owner).Return(nil)

	req := d.request()
	req.OwnershipAcknowledged = true
	result, err := d.svc.Register(context.Background(), req)
	require.NoError(t, err)

	require.NotNil(t, result.Record.Ownership)
	assert.True(t, result.Record.Ownership.IsFrozen())
	assert.Equal(t, domain.BasisPoints(5550), result.Record.Ownership.TotalCoOwnerBasisPoints())
	assert.False(t, draft.Allocation.IsFrozen(), "the stored draft object is never frozen in place")
}

func TestRegister_ValidationErrors(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(m *domain.AssetMetadata)
		message string
	}{
		{name: "no image", mutate: func(m *domain.AssetMetadata) { m.Image = nil }, message: "Please select an image"},
		{name: "not an image", mutate: func(m *domain.AssetMetadata) { m.ImageContentType = "application/pdf" }, message: "Please select an image file"},
		{name: "too large", mutate: func(m *domain.AssetMetadata) { m.Image = make([]byte, MaxImageSize+1) }, message: "Image size must be less than 10MB"},
		{name: "no name", mutate: func(m *domain.AssetMetadata) { m.Name = "  " }, message: "Please enter a name"},
		{name: "no creator", mutate: func(m *domain.AssetMetadata) { m.Creator = "" }, message: "Please enter the creator"},
		{name: "no description", mutate: func(m *domain.AssetMetadata) { m.Description = "" }, message: "Please enter a description"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			d := setupRegistrationService(t)
			req := d.request()
			tt.mutate(&req.Metadata)

			_, err := d.svc.Register(context.Background(), req)
			assertAppError(t, err, "VAL_001")
			var appErr *apperror.AppError
			require.ErrorAs(t, err, &appErr)
			assert.Equal(t, tt.message, appErr.Message)
		})
	}
}

func TestRegister_MissingContract(t *testing.T) {
	d := setupRegistrationService(t)
	d.svc.cfg.SPGNFTContract = common.Address{}

	_, err := d.svc.Register(context.Background(), d.request())
	assertAppError(t, err, "COL_003")
}

func TestRegister_MissingSigner(t *testing.T) {
	d := setupRegistrationService(t)
	d.svc.registrar = nil

	_, err := d.svc.Register(context.Background(), d.request())
	assertAppError(t, err, "COL_003")
	assert.Contains(t, err.Error(), "no signing key")
}

func TestRegister_UploadFailures(t *testing.T) {
	t.Run("pinner auth error passes through", func(t *testing.T) {
		d := setupRegistrationService(t)
		d.drafts.EXPECT().Get(gomock.Any(), d.owner).Return(nil, nil)
		d.pinner.EXPECT().PinFile(gomock.Any(), gomock.Any(), gomock.Any()).
			Return("", apperror.ErrCollaboratorAuth("Pinata", "Please check your PINATA_JWT."))

		_, err := d.svc.Register(context.Background(), d.request())
		assertAppError(t, err, "COL_001")
	})

	t.Run("metadata network error", func(t *testing.T) {
		d := setupRegistrationService(t)
		d.drafts.EXPECT().Get(gomock.Any(), d.owner).Return(nil, nil)
		d.pinner.EXPECT().PinFile(gomock.Any(), gomock.Any(), gomock.Any()).Return(testImageURI, nil)
		d.pinner.EXPECT().PinJSON(gomock.Any(), gomock.Any(), gomock.Any()).Return("", errors.New("fetch failed"))

		_, err := d.svc.Register(context.Background(), d.request())
		assertAppError(t, err, "NET_001")
	})
}

func TestRegister_InsufficientFunds(t *testing.T) {
	d := setupRegistrationService(t)

	d.drafts.EXPECT().Get(gomock.Any(), d.owner).Return(nil, nil)
	d.expectUploads()
	d.registrar.EXPECT().Signer().Return(testSigner)
	d.balances.EXPECT().BalanceAt(gomock.Any(), testSigner).Return(big.NewInt(500_000_000_000_000), nil)

	_, err := d.svc.Register(context.Background(), d.request())
	assertAppError(t, err, "FUND_001")
	assert.Contains(t, err.Error(), "need 0.0005 ETH more")
}

func TestRegister_BalanceLookupFailureIsNotFatal(t *testing.T) {
	d := setupRegistrationService(t)

	d.drafts.EXPECT().Get(gomock.Any(), d.owner).Return(nil, nil)
	d.expectUploads()
	d.registrar.EXPECT().Signer().Return(testSigner)
	d.balances.EXPECT().BalanceAt(gomock.Any(), testSigner).Return(nil, errors.New("rpc unavailable"))
	d.registrar.EXPECT().MintAndRegisterIP(gomock.Any(), gomock.Any()).
		Return(&domain.RegistrationReceipt{AssetID: validAssetID, TransactionHash: validTxHash}, nil)
	d.gallery.EXPECT().Append(gomock.Any(), d.owner, gomock.Any()).Return(nil)

	_, err := d.svc.Register(context.Background(), d.request())
	require.NoError(t, err)
}

func TestRegister_FailureLeavesDraftUsable_RetryFreezes(t *testing.T) {
	d := setupRegistrationService(t)
	draft := d.draftWith(t, map[string]domain.BasisPoints{coOwnerB: 4000})
	req := d.request()
	req.OwnershipAcknowledged = true

	d.drafts.EXPECT().Get(gomock.Any(), d.owner).Return(draft, nil).Times(3)
	d.pinner.EXPECT().PinFile(gomock.Any(), gomock.Any(), gomock.Any()).Return(testImageURI, nil).Times(2)
	d.pinner.EXPECT().PinJSON(gomock.Any(), gomock.Any(), gomock.Any()).Return(testMetadataURI, nil).Times(2)
	d.registrar.EXPECT().Signer().Return(testSigner).AnyTimes()
	d.balances.EXPECT().BalanceAt(gomock.Any(), testSigner).Return(oneMilliEther, nil).Times(2)

	gomock.InOrder(
		d.registrar.EXPECT().MintAndRegisterIP(gomock.Any(), gomock.Any()).
			Return(nil, errors.New("execution reverted: nonce too low")),
		d.registrar.EXPECT().MintAndRegisterIP(gomock.Any(), gomock.Any()).
			Return(&domain.RegistrationReceipt{AssetID: validAssetID, TransactionHash: validTxHash}, nil),
	)

	_, err := d.svc.Register(context.Background(), req)
	assertAppError(t, err, "REG_001")
	assert.Contains(t, err.Error(), "nonce too low")
	assert.False(t, draft.Allocation.IsFrozen())
	require.NoError(t, draft.Allocation.AddShare(mustAddr(t, coOwnerC), 1000), "draft stays editable after a failure")

	d.gallery.EXPECT().Append(gomock.Any(), d.owner, gomock.Any()).Return(nil)
	d.drafts.EXPECT().Delete(gomock.Any(), d.owner).Return(nil)

	result, err := d.svc.Register(context.Background(), req)
	require.NoError(t, err)
	require.NotNil(t, result.Record.Ownership)
	assert.True(t, result.Record.Ownership.IsFrozen())
	assert.Len(t, result.Record.Ownership.CoOwners(), 2)
}

func TestRegister_InvalidReceipt(t *testing.T) {
	d := setupRegistrationService(t)

	d.drafts.EXPECT().Get(gomock.Any(), d.owner).Return(nil, nil)
	d.expectUploads()
	d.expectFunded()
	d.registrar.EXPECT().MintAndRegisterIP(gomock.Any(), gomock.Any()).
		Return(&domain.RegistrationReceipt{AssetID: "", TransactionHash: validTxHash}, nil)

	_, err := d.svc.Register(context.Background(), d.request())
	assertAppError(t, err, "REG_002")
}

func TestRegister_GalleryFailureStillReturnsResult(t *testing.T) {
	d := setupRegistrationService(t)

	d.drafts.EXPECT().Get(gomock.Any(), d.owner).Return(d.draftWith(t, nil), nil).Times(2)
	d.expectUploads()
	d.expectFunded()
	d.registrar.EXPECT().MintAndRegisterIP(gomock.Any(), gomock.Any()).
		Return(&domain.RegistrationReceipt{AssetID: strings.ToLower(validAssetID), TransactionHash: validTxHash}, nil)
	d.gallery.EXPECT().Append(gomock.Any(), d.owner, gomock.Any()).Return(errors.New("disk full"))
	d.drafts.EXPECT().Delete(gomock.Any(), d.owner).Return(errors.New("redis down"))

	result, err := d.svc.Register(context.Background(), d.request())
	require.NoError(t, err)
	assert.Equal(t, validAssetID, result.Record.AssetID)
}

func TestRegister_ConfiguredRecipient(t *testing.T) {
	d := setupRegistrationService(t)
	recipient := common.HexToAddress("0x1111111111111111111111111111111111111111")
	d.svc.cfg.Recipient = recipient

	d.drafts.EXPECT().Get(gomock.Any(), d.owner).Return(nil, nil)
	d.expectUploads()
	d.expectFunded()
	d.registrar.EXPECT().MintAndRegisterIP(gomock.Any(), gomock.Any()).DoAndReturn(
		func(_ context.Context, req domain.MintAndRegisterRequest) (*domain.RegistrationReceipt, error) {
			assert.Equal(t, recipient, req.Recipient)
			return &domain.RegistrationReceipt{AssetID: validAssetID, TransactionHash: validTxHash}, nil
		},
	)
	d.gallery.EXPECT().Append(gomock.Any(), d.owner, gomock.Any()).Return(nil)

	_, err := d.svc.Register(context.Background(), d.request())
	require.NoError(t, err)
}

func TestRegister_KeepsDraftEditedInFlight(t *testing.T) {
	registeredAt := time.UnixMilli(1_700_000_000_000).UTC()

	tests := []struct {
		name  string
		after func(t *testing.T, d *registrationTestDeps) *domain.OwnershipDraft
	}{
		{
			name: "co-owner committed during the transaction",
			after: func(t *testing.T, d *registrationTestDeps) *domain.OwnershipDraft {
				edited := d.draftWith(t, map[string]domain.BasisPoints{coOwnerB: 3000, coOwnerC: 1000})
				edited.UpdatedAt = registeredAt.Add(time.Minute)
				return edited
			},
		},
		{
			name: "draft discarded during the transaction",
			after: func(*testing.T, *registrationTestDeps) *domain.OwnershipDraft { return nil },
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			d := setupRegistrationService(t)
			before := d.draftWith(t, map[string]domain.BasisPoints{coOwnerB: 3000})
			before.UpdatedAt = registeredAt

			gomock.InOrder(
				d.drafts.EXPECT().Get(gomock.Any(), d.owner).Return(before, nil),
				d.drafts.EXPECT().Get(gomock.Any(), d.owner).Return(tt.after(t, d), nil),
			)
			d.expectUploads()
			d.expectFunded()
			d.registrar.EXPECT().MintAndRegisterIP(gomock.Any(), gomock.Any()).
				Return(&domain.RegistrationReceipt{AssetID: validAssetID, TransactionHash: validTxHash}, nil)
			d.gallery.EXPECT().Append(gomock.Any(), d.owner, gomock.Any()).Return(nil)
			d.drafts.EXPECT().Delete(gomock.Any(), gomock.Any()).Times(0)

			req := d.request()
			req.OwnershipAcknowledged = true
			result, err := d.svc.Register(context.Background(), req)
			require.NoError(t, err)
			assert.Len(t, result.Record.Ownership.CoOwners(), 1, "the registered split is the one read at the start")
		})
	}
}

func TestRegister_NoDraftNothingToClear(t *testing.T) {
	d := setupRegistrationService(t)

	d.drafts.EXPECT().Get(gomock.Any(), d.owner).Return(nil, nil).Times(1)
	d.expectUploads()
	d.expectFunded()
	d.registrar.EXPECT().MintAndRegisterIP(gomock.Any(), gomock.Any()).
		Return(&domain.RegistrationReceipt{AssetID: validAssetID, TransactionHash: validTxHash}, nil)
	d.gallery.EXPECT().Append(gomock.Any(), d.owner, gomock.Any()).Return(nil)
	d.drafts.EXPECT().Delete(gomock.Any(), gomock.Any()).Times(0)

	_, err := d.svc.Register(context.Background(), d.request())
	require.NoError(t, err)
}

func TestFormatEther(t *testing.T) {
	assert.Equal(t, "0.0005 ETH", FormatEther(big.NewInt(500_000_000_000_000)))
	assert.Equal(t, "1 ETH", FormatEther(new(big.Int).Exp(big.NewInt(10), big.NewInt(18), nil)))
	assert.Equal(t, "0 ETH", FormatEther(big.NewInt(0)))
}
