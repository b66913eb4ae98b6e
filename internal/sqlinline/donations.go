package sqlinline

const QInsertDonation = `--sql abe240d1-2a9d-4dad-b2f4-ba1d7bf96249
insert into donations(
  donor_name,
  donor_address,
  donor_contact,
  donor_country,
  program_id,
  category_id,
  donation_type,
  amount,
  status,
  donation_date,
  created_at
) values (
  $1::text,
  $2::text,
  $3::text,
  nullif($4::text, ''),
  $5::uuid,
  nullif($6::text, '')::uuid,
  $7::text,
  $8::numeric,
  $9::text,
  now(),
  now()
) returning id, donation_date, created_at;
`

const QInsertDonationItem = `--sql e4a55089-78ee-4d01-916f-5dc374b35199
insert into donation_items(donation_id, goods_item_id, quantity)
values ($1::uuid, $2::uuid, $3::text)
returning id;
`

const QListDonations = `--sql 73e14a26-b862-43fd-a09d-ede0e18fd18e
select
  d.id,
  d.donor_name,
  d.donor_address,
  d.donor_contact,
  coalesce(d.donor_country, ''),
  d.program_id,
  p.title,
  d.category_id::text,
  coalesce(c.name, ''),
  d.donation_type,
  d.amount::text,
  d.status,
  d.donation_date,
  d.created_at
from donations d
join programs p on p.id = d.program_id
left join donation_categories c on c.id = d.category_id
where ($1::text = '' or d.status = $1::text)
  and ($2::text = '' or d.program_id::text = $2::text)
  and ($3::text = '' or d.donation_type = $3::text)
order by d.donation_date desc, d.created_at desc;
`

const QListDonationItems = `--sql 4424d0f5-06a2-4072-bca5-506b9d10d09d
select i.id, i.donation_id, i.goods_item_id, g.name, i.quantity
from donation_items i
join goods_items g on g.id = i.goods_item_id
where i.donation_id::text = any($1::text[])
order by g.name asc;
`

const QUpdateDonationStatus = `--sql f0d44a85-d67e-4799-ba3e-d3291ce16260
update donations
set status = $2::text
where id = $1::uuid;
`

const QProgramDonationStats = `--sql 9745a591-16dc-46dc-8544-d20afc7a5e9b
select
  coalesce(sum(amount) filter (where donation_type = 'money'), 0)::text,
  count(*) filter (where donation_type = 'money'),
  count(*) filter (where donation_type = 'goods')
from donations
where program_id = $1::uuid
  and status = 'Received';
`

const QGoodsContributions = `--sql 2eca500c-d838-40fc-a03d-57d94e9835ba
select i.goods_item_id, i.quantity, d.status
from donation_items i
join donations d on d.id = i.donation_id
where d.program_id = $1::uuid;
`
