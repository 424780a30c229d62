// Copyright 2023 ecodeclub
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
// http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package event

import (
	"fmt"
	"time"

	"github.com/robertobolla/talkme-sub001/internal/notification/internal/domain"
)

// key 业务, 业务ID, 动作, 接收人
func key(biz string, bizID any, action string, uid int64) string {
	return fmt.Sprintf("%s:%v:%s:%d", biz, bizID, action, uid)
}

func money(cents int64) string {
	return fmt.Sprintf("%d.%02d", cents/100, cents%100)
}

func formatTime(ms int64) string {
	return time.UnixMilli(ms).UTC().Format("2006-01-02 15:04 UTC")
}

func offerNotifications(evt OfferEvent) []domain.Notification {
	newNotification := func(uid int64, title, content string) domain.Notification {
		return domain.Notification{
			Key:     key(domain.BizOffer, evt.OfferID, evt.Action, uid),
			Uid:     uid,
			Type:    evt.Action,
			Title:   title,
			Content: content,
			Biz:     domain.BizOffer,
			BizID:   evt.OfferID,
		}
	}
	switch evt.Action {
	case "applied":
		return []domain.Notification{newNotification(evt.ClientID, "New application",
			fmt.Sprintf("A companion applied to your offer %q.", evt.Title))}
	case "withdrawn":
		return []domain.Notification{newNotification(evt.ClientID, "Application withdrawn",
			fmt.Sprintf("A companion withdrew the application to your offer %q.", evt.Title))}
	case "accepted":
		return []domain.Notification{newNotification(evt.CompanionID, "Application accepted",
			fmt.Sprintf("Your application to %q was accepted. The session starts at %s.", evt.Title, formatTime(evt.StartAt)))}
	case "rejected":
		return []domain.Notification{newNotification(evt.CompanionID, "Application rejected",
			fmt.Sprintf("Your application to %q was not accepted.", evt.Title))}
	case "cancelled":
		return []domain.Notification{
			newNotification(evt.ClientID, "Offer cancelled",
				fmt.Sprintf("The offer %q was cancelled.", evt.Title)),
			newNotification(evt.CompanionID, "Offer cancelled",
				fmt.Sprintf("The offer %q you were assigned to was cancelled.", evt.Title)),
		}
	case "completed":
		return []domain.Notification{
			newNotification(evt.ClientID, "Offer completed",
				fmt.Sprintf("The offer %q is completed.", evt.Title)),
			newNotification(evt.CompanionID, "Offer completed",
				fmt.Sprintf("The offer %q is completed. %s has been paid to your wallet.", evt.Title, money(evt.Budget))),
		}
	case "expired":
		return []domain.Notification{newNotification(evt.ClientID, "Offer expired",
			fmt.Sprintf("The offer %q expired before anyone was accepted.", evt.Title))}
	}
	return nil
}

func bookingNotifications(evt BookingEvent) []domain.Notification {
	newNotification := func(uid int64, title, content string) domain.Notification {
		return domain.Notification{
			Key:     key(domain.BizSession, evt.SessionID, evt.Action, uid),
			Uid:     uid,
			Type:    evt.Action,
			Title:   title,
			Content: content,
			Biz:     domain.BizSession,
			BizID:   evt.SessionID,
		}
	}
	start := formatTime(evt.StartAt)
	switch evt.Action {
	case "booked":
		return []domain.Notification{newNotification(evt.CompanionID, "New booking request",
			fmt.Sprintf("You have a new session request at %s.", start))}
	case "confirmed":
		return []domain.Notification{
			newNotification(evt.ClientID, "Session confirmed",
				fmt.Sprintf("Your session at %s is confirmed.", start)),
			newNotification(evt.CompanionID, "Session confirmed",
				fmt.Sprintf("The session at %s is confirmed.", start)),
		}
	case "rejected":
		content := fmt.Sprintf("Your session request at %s was rejected.", start)
		if evt.Reason != "" {
			content = fmt.Sprintf("%s Reason: %s", content, evt.Reason)
		}
		return []domain.Notification{newNotification(evt.ClientID, "Session rejected", content)}
	case "cancelled":
		return []domain.Notification{
			newNotification(evt.ClientID, "Session cancelled",
				fmt.Sprintf("The session at %s was cancelled.", start)),
			newNotification(evt.CompanionID, "Session cancelled",
				fmt.Sprintf("The session at %s was cancelled.", start)),
		}
	case "completed":
		return []domain.Notification{
			newNotification(evt.ClientID, "Session completed",
				fmt.Sprintf("Your session at %s is completed.", start)),
			newNotification(evt.CompanionID, "Session completed",
				fmt.Sprintf("The session at %s is completed. %s has been paid to your wallet.", start, money(evt.Price))),
		}
	case "expired":
		return []domain.Notification{newNotification(evt.ClientID, "Session expired",
			fmt.Sprintf("Your session request at %s was not confirmed in time. The funds were released.", start))}
	}
	return nil
}

func paymentNotifications(evt PaymentEvent) []domain.Notification {
	var action, title, content string
	amount := fmt.Sprintf("%s %s", money(evt.Amount), evt.Asset)
	switch {
	case evt.Type == PaymentTypeDeposit && evt.Status == PaymentStatusPaid:
		action, title = "deposit_paid", "Deposit received"
		content = fmt.Sprintf("Your deposit %s of %s was credited.", evt.SN, amount)
	case evt.Type == PaymentTypeDeposit && evt.Status == PaymentStatusFailed:
		action, title = "deposit_failed", "Deposit failed"
		content = fmt.Sprintf("Your deposit %s of %s failed.", evt.SN, amount)
	case evt.Type == PaymentTypeDeposit && evt.Status == PaymentStatusExpired:
		action, title = "deposit_expired", "Deposit expired"
		content = fmt.Sprintf("Your deposit %s of %s expired before funds arrived.", evt.SN, amount)
	case evt.Type == PaymentTypeWithdrawal && evt.Status == PaymentStatusPaid:
		action, title = "withdrawal_paid", "Withdrawal sent"
		content = fmt.Sprintf("Your withdrawal %s of %s was sent.", evt.SN, amount)
	case evt.Type == PaymentTypeWithdrawal && evt.Status == PaymentStatusFailed:
		action, title = "withdrawal_failed", "Withdrawal failed"
		content = fmt.Sprintf("Your withdrawal %s of %s failed. The funds were returned to your wallet.", evt.SN, amount)
	default:
		return nil
	}
	return []domain.Notification{{
		Key:     key(domain.BizPayment, evt.SN, action, evt.Uid),
		Uid:     evt.Uid,
		Type:    action,
		Title:   title,
		Content: content,
		Biz:     domain.BizPayment,
	}}
}
