package http

import (
	"errors"

	"github.com/cleitonmarx/symbiont-ai-foodapp/internal/adapters/inbound/http/gen"
	"github.com/cleitonmarx/symbiont-ai-foodapp/internal/domain"
)

func toError(err error) gen.ErrorResp {
	var (
		validationErr   *domain.ValidationErr
		notFoundErr     *domain.NotFoundErr
		unauthorizedErr *domain.UnauthorizedErr
		upstreamErr     *domain.UpstreamErr
	)

	errResp := gen.ErrorResp{}
	switch {
	case errors.As(err, &validationErr):
		errResp.Error.Code = gen.BADREQUEST
		errResp.Error.Message = validationErr.Error()
	case errors.As(err, &unauthorizedErr):
		errResp.Error.Code = gen.UNAUTHORIZED
		errResp.Error.Message = unauthorizedErr.Error()
	case errors.As(err, &notFoundErr):
		errResp.Error.Code = gen.NOTFOUND
		errResp.Error.Message = notFoundErr.Error()
	case errors.As(err, &upstreamErr):
		errResp.Error.Code = gen.BADGATEWAY
		errResp.Error.Message = upstreamErr.Error()
	default:
		errResp.Error.Code = gen.INTERNALERROR
		errResp.Error.Message = "internal server error"
	}
	return errResp
}

func toCart(cart domain.Cart) gen.CartResp {
	resp := gen.CartResp{
		Items: make([]gen.CartItem, 0, len(cart.Items)),
		Total: cart.Total,
	}
	for _, item := range cart.Items {
		resp.Items = append(resp.Items, gen.CartItem{
			Id:        item.ID,
			Name:      item.Name,
			Price:     item.Price,
			Quantity:  item.Quantity,
			Image:     item.Image,
			CreatedAt: item.CreatedAt,
		})
	}
	return resp
}

func toPaymentTransaction(tx domain.PaymentTransaction) gen.PaymentTransaction {
	return gen.PaymentTransaction{
		Status:  tx.Status,
		Message: tx.Message,
		Data: gen.PaymentAuthorization{
			AuthorizationUrl: tx.Data.AuthorizationURL,
			AccessCode:       tx.Data.AccessCode,
			Reference:        tx.Data.Reference,
		},
	}
}

func toPaymentWebhookEvent(req gen.PaymentWebhookReq) domain.PaymentWebhookEvent {
	event := domain.PaymentWebhookEvent{Event: req.Event}
	if req.Data.Reference != nil {
		event.Data.Reference = *req.Data.Reference
	}
	if req.Data.Amount != nil {
		event.Data.Amount = *req.Data.Amount
	}
	if req.Data.Metadata != nil && req.Data.Metadata.UserId != nil {
		event.Data.Metadata.UserID = *req.Data.Metadata.UserId
	}
	return event
}

func toAssistantMessages(messages []gen.ChatMessage) []domain.AssistantMessage {
	res := make([]domain.AssistantMessage, 0, len(messages))
	for _, msg := range messages {
		res = append(res, domain.AssistantMessage{
			Role:    domain.ChatRole(msg.Role),
			Content: msg.Content,
		})
	}
	return res
}

func toRestaurant(r domain.Restaurant) gen.Restaurant {
	tags := r.Tags
	if tags == nil {
		tags = []string{}
	}
	return gen.Restaurant{
		Id:          r.ID,
		Name:        r.Name,
		Description: r.Description,
		Image:       r.Image,
		Tags:        tags,
	}
}

func toMenuItem(item domain.MenuItem) gen.MenuItem {
	tags := item.Tags
	if tags == nil {
		tags = []string{}
	}
	return gen.MenuItem{
		Id:          item.ID,
		Name:        item.Name,
		Description: item.Description,
		Price:       item.Price,
		Currency:    item.Currency,
		Category:    item.Category,
		Tags:        tags,
		Image:       item.Image,
	}
}
