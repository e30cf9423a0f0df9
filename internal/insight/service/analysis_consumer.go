package service

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"golang-stock-insight/internal/insight/dto"
	"golang-stock-insight/pkg/common"
	"golang-stock-insight/pkg/logger"
	"golang-stock-insight/pkg/telegram"
	"golang-stock-insight/pkg/utils"

	"github.com/redis/go-redis/v9"
)

func (s *analysisService) ProcessTask(ctx context.Context) {
	streams, err := s.redisClient.XReadGroup(ctx, &redis.XReadGroupArgs{
		Group:    common.RedisStreamGroup,
		Consumer: common.RedisStreamConsumer,
		Streams:  []string{common.RedisStreamWatchlistScan, ">"}, // ">" means only new messages
		Count:    1,
		Block:    2 * time.Second, // Block for 2 seconds to allow graceful shutdown
	}).Result()
	if err != nil {
		// Ignore context cancellation and timeout errors, as they are expected during shutdown or idle periods.
		if err == context.Canceled || err == redis.Nil {
			return
		}
		s.log.Error("Failed to read from stream", logger.ErrorField(err))
		return
	}

	if len(streams) == 0 || len(streams[0].Messages) == 0 {
		return
	}

	message := streams[0].Messages[0]

	streamData, ok := s.decodeScanMessage(message)
	if !ok {
		return
	}

	s.log.Debug("Processing watchlist scan task", logger.StringField("symbol", streamData.Symbol), logger.StringField("horizon", streamData.Horizon))

	if err := s.runScan(ctx, streamData); err != nil {
		s.log.Error("Failed to analyze watchlist stock", logger.ErrorField(err), logger.Field("message_id", message.ID), logger.StringField("symbol", streamData.Symbol))
		return
	}
	if err := s.AckNDel(ctx, common.RedisStreamWatchlistScan, message.ID); err != nil {
		s.log.Error("Failed to acknowledge and delete watchlist scan task", logger.ErrorField(err), logger.Field("message_id", message.ID))
		return
	}

	s.log.Debug("Watchlist scan task processed successfully", logger.StringField("symbol", streamData.Symbol))
}

func (s *analysisService) ProcessRetries(ctx context.Context) {
	msgs, _, err := s.redisClient.XAutoClaim(ctx, &redis.XAutoClaimArgs{
		Stream:   common.RedisStreamWatchlistScan,
		Group:    common.RedisStreamGroup,
		Consumer: common.RedisStreamConsumer + "-retry",
		MinIdle:  s.cfg.Watchlist.RedisStreamScanMaxIdleDuration,
		Start:    "0",
		Count:    1,
	}).Result()

	if err != nil {
		s.log.Error("Failed to claim watchlist scan task on retry", logger.ErrorField(err))
		return
	}

	if len(msgs) == 0 {
		s.log.Debug("Retry No pending messages found", logger.StringField("stream", common.RedisStreamWatchlistScan))
		return
	}

	s.log.Info("Found pending messages", logger.StringField("stream", common.RedisStreamWatchlistScan))

	pendingInfo, err := s.redisClient.XPendingExt(ctx, &redis.XPendingExtArgs{
		Stream: common.RedisStreamWatchlistScan,
		Group:  common.RedisStreamGroup,
		Start:  msgs[0].ID,
		End:    msgs[0].ID,
		Count:  1,
	}).Result()

	if err != nil {
		s.log.Error("Failed to get pending info", logger.ErrorField(err))
		return
	}

	if len(pendingInfo) == 0 {
		s.log.Warn("pending msg not found, but exist on xautoclaim",
			logger.StringField("stream", common.RedisStreamWatchlistScan),
			logger.StringField("message_id", msgs[0].ID))
		return
	}

	msg := msgs[0]
	streamData, ok := s.decodeScanMessage(msg)
	if !ok {
		return
	}

	if pendingInfo[0].RetryCount >= int64(s.cfg.Watchlist.RedisStreamScanMaxRetry) {
		s.log.Error("pending msg retry count exceeded",
			logger.StringField("stream", common.RedisStreamWatchlistScan),
			logger.StringField("message_id", msg.ID),
			logger.StringField("symbol", streamData.Symbol),
			logger.IntField("retry_count", int(pendingInfo[0].RetryCount)),
			logger.IntField("max_retry", s.cfg.Watchlist.RedisStreamScanMaxRetry),
		)
		if s.telegramBot != nil {
			msgTelegram := telegram.FormatErrorAlertMessage(utils.TimeNowEastern(), fmt.Sprintf("Watchlist scan retry count exceeded for %s, interval %s, range %s", streamData.Symbol, streamData.Interval, streamData.Range))
			if err := s.telegramBot.SendMessage(msgTelegram); err != nil {
				s.log.Error("Failed to send telegram message retry exceeded", logger.ErrorField(err), logger.StringField("symbol", streamData.Symbol))
			}
		}
		if err := s.AckNDel(ctx, common.RedisStreamWatchlistScan, msg.ID); err != nil {
			s.log.Error("Failed to acknowledge and delete watchlist scan task", logger.ErrorField(err), logger.Field("message_id", msg.ID))
		}
		return
	}

	if err := s.runScan(ctx, streamData); err != nil {
		s.log.Error("Failed to analyze watchlist stock", logger.ErrorField(err), logger.Field("message_id", msg.ID), logger.StringField("symbol", streamData.Symbol))
		return
	}

	if err := s.AckNDel(ctx, common.RedisStreamWatchlistScan, msg.ID); err != nil {
		s.log.Error("Failed to acknowledge and delete watchlist scan task", logger.ErrorField(err), logger.Field("message_id", msg.ID))
		return
	}
	s.log.Info("Retry Watchlist scan task processed successfully", logger.StringField("symbol", streamData.Symbol))
}

func (s *analysisService) AckNDel(ctx context.Context, streamName string, messageID string) error {
	if err := s.redisClient.XAck(ctx, streamName, common.RedisStreamGroup, messageID).Err(); err != nil {
		s.log.Error("Failed to acknowledge watchlist scan task", logger.ErrorField(err), logger.Field("message_id", messageID))
		return err
	}
	if err := s.redisClient.XDel(ctx, streamName, messageID).Err(); err != nil {
		s.log.Error("Failed to delete watchlist scan task", logger.ErrorField(err), logger.Field("message_id", messageID))
		return err
	}
	return nil
}

// decodeScanMessage extracts the scan payload from a stream message. The task
// data is expected to be a JSON string in the 'payload' field.
func (s *analysisService) decodeScanMessage(msg redis.XMessage) (dto.StreamDataWatchlistScan, bool) {
	var streamData dto.StreamDataWatchlistScan
	taskData, ok := msg.Values["payload"].(string)
	if !ok {
		s.log.Error("field 'payload' not found or not a string in stream message", logger.Field("message_id", msg.ID))
		return streamData, false
	}
	if err := json.Unmarshal([]byte(taskData), &streamData); err != nil {
		s.log.Error("Failed to unmarshal task data", logger.ErrorField(err), logger.Field("message_id", msg.ID))
		return streamData, false
	}
	return streamData, true
}

func (s *analysisService) runScan(ctx context.Context, task dto.StreamDataWatchlistScan) error {
	_, err := s.Analyze(ctx, dto.GetStockDataParam{
		Symbol:   task.Symbol,
		Interval: task.Interval,
		Range:    task.Range,
	}, task.Horizon)
	return err
}
