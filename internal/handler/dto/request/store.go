package request

import "closeout-market/internal/usecase/commands"

type RegisterStoreRequest struct {
	Name      string `json:"name" binding:"required"`
	Address   string `json:"address" binding:"required"`
	BizNumber string `json:"biz_number" binding:"required"`
}

func (r RegisterStoreRequest) ToInput() commands.RegisterStoreInput {
	return commands.RegisterStoreInput{
		Name:      r.Name,
		Address:   r.Address,
		BizNumber: r.BizNumber,
	}
}

type VerifyStoreRequest struct {
	OwnerName string `json:"owner_name" binding:"required"`
	// YYYYMMDD or YYYY-MM-DD
	StartDate string `json:"start_date" binding:"required"`
}

func (r VerifyStoreRequest) ToInput() commands.VerifyStoreInput {
	return commands.VerifyStoreInput{
		OwnerName: r.OwnerName,
		StartDate: r.StartDate,
	}
}
